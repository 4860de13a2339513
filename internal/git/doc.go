// Package git runs the git executable for the minecorg CLI.
//
// minecorg only needs git while scaffolding: "minecorg init --git" turns
// the new project into a repository, and "minecorg doctor" reports
// whether git is installed.
//
//	if !git.IsRepo(ctx, root) {
//	    err := git.Init(ctx, root)
//	}
//
// # Error Handling
//
// All functions return errors wrapped with appropriate exit codes:
//   - ExitSystemError (2) for git not found or a failing git command
package git
