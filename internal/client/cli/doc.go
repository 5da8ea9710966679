// Package cli is the presentation tier of the project manager: a cobra
// command tree over the REST API plus an interactive shell.
//
// Every command is a single round trip (summary makes three). Nothing is
// cached or updated optimistically; on any non-200 reply the server's detail
// text is shown and, outside the shell, the process exits non-zero.
//
// Commands
//
//	projects list | add | update <id> | delete <id> | tasks <id>
//	tasks    list [--project <id>] | add | update <id> | delete <id> | complete <id> | pending <id>
//	users    list | add | update <id> | delete <id>
//	summary  counts per status and role
//	shell    interactive prompt (see runREPL)
package cli
