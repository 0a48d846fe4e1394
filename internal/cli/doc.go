// Package cli is the interactive terminal client for Hack or Snooze.
//
// It drives a small REPL over the session and stories packages. On start
// it tries to resume the previous session from the local store; after a
// successful login or signup the credentials are saved there, and logout
// clears them.
//
// # Commands
//
//	Not logged in:
//	  - stories | s    — list all stories
//	  - login          — authenticate
//	  - signup         — create an account
//	  - exit | quit    — leave
//
//	Logged in, additionally:
//	  - submit         — post a new story
//	  - mine           — list your stories
//	  - favorites      — list your favorites
//	  - fav <id>       — favorite a story
//	  - unfav <id>     — unfavorite a story
//	  - delete <id>    — delete your story
//	  - logout         — forget the session
package cli
