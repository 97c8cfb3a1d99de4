// Package loader reads named text resources and classifies every failure.
//
// A Loader offers two operations over a Storage collaborator:
//
//   - LoadOrCreate returns the resource's text, creating the resource empty
//     when it does not exist.
//   - LoadStrict returns the resource's text and never creates anything.
//
// Every failure is returned as an errors.PlatformError whose code falls in a
// closed set. ReasonOf maps it onto a Reason without string matching:
//
//	content, err := l.LoadOrCreate("hello.txt")
//	switch loader.ReasonOf(err) {
//	case "":
//	    // use content
//	case loader.ReasonCreateFailed:
//	    log.Fatalf("cannot create hello.txt: %s", loader.Diagnostic(err))
//	default:
//	    return err
//	}
//
// The loader never retries, never panics and never decides what a failure
// means for the program. Content is read fresh on every call and is never
// partially returned.
//
// # Concurrency
//
// A Loader holds no mutable state and may be shared. Calls on the same name
// are not coordinated: two concurrent LoadOrCreate calls may both see the
// resource missing and both create it.
package loader
