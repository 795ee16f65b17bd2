// Package git finds the repository a command operates on.
//
// Repository discovery is a plain filesystem walk: FindRoot checks each
// ancestor of an explicit start directory for a .git directory. It does
// not shell out, so it works before git is installed and in sandboxes
// without a git binary.
//
//	root, err := git.FindRoot(dir)
//	if output.IsAbort(err) {
//	    // not inside a repository: warn and exit 0
//	}
//	hooks := git.HooksDir(root)
//
// The exec wrapper (Run, RunContext) is used only for read-only queries
// such as HooksPathOverride. Its failures carry output.ExitSystemError.
package git
