package models

// MessageReply is the daemon's answer to a [Message].
type MessageReply struct {
	// OK is false when the action failed; Error then holds the reason.
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	// Strategy names the clipboard strategy that received the text, for
	// actions that copy.
	Strategy string `json:"strategy,omitempty"`

	// Count is the number of tabs the action worked on.
	Count int `json:"count,omitempty"`
}

// SelectionResponse carries the tabs last reported with a TabsSelected
// message.
type SelectionResponse struct {
	Tabs []Tab `json:"tabs"`
}

// VersionResponse is served on the daemon's version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// ShortenRequest is the body sent to the link-shortening service.
type ShortenRequest struct {
	Data string `json:"data"`
}

// ShortenResponse is the link-shortening service reply.
type ShortenResponse struct {
	ShareID string `json:"share_id"`
}
