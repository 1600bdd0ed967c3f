// Package dialog holds the conversation model of the ordering bot: the closed
// set of flow states, the user events that drive them and the per-chat Session
// aggregate that remembers where each chat is.
//
// Handlers never assign a state directly; they call Session.MoveTo, which
// rejects moves that are not part of the flow.
package dialog
