/*
Package status records and reports the outcome of a migration run.

🎯 Purpose:
- Defines the per-file Outcome (modified, unchanged, missing, error)
- Collects results into a Summary with a modified-file tally
- Prints one status line per file and a closing summary

🔄 Flow:
 1. The walker produces a Result for each path
 2. Reporter.Report prints it (and its diff, when enabled)
 3. Reporter.Finish prints the tally once every path is done

📝 Output is for humans. Every event is also sent to the zerolog logger in
the context at debug level.

🔍 Example:

	rep := status.NewReporter(os.Stdout, false)
	rep.Banner(ctx, root, len(files))
	rep.Report(ctx, status.Result{Path: "src/a.rs", Outcome: status.OutcomeModified, Replacements: 3})
	rep.Finish(ctx, summary)
*/
package status
