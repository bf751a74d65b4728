// Package pager implements the interactive pagination loop that follows
// every list-style command.
//
// After each page the envelope's next/previous cursor URLs are persisted
// to the session store in one write, then the user is offered whichever
// directions remain. Cursor URLs arrive absolute with their own query
// parameters and are fetched as-is. The loop ends when both cursors are
// exhausted, on unrecognized input, or at end of input.
package pager
