package lingo

// Registry is a closed set of message keys a catalog is allowed to define.
// Passing one to Load turns a typo in a catalog file into a startup error
// instead of a missed lookup in production.
type Registry struct {
	keys map[string]struct{}
}

// NewRegistry builds a Registry from the given keys.
func NewRegistry(keys ...string) *Registry {
	r := &Registry{keys: make(map[string]struct{}, len(keys))}
	return r.Add(keys...)
}

// Add registers more keys and returns the registry for chaining.
func (r *Registry) Add(keys ...string) *Registry {
	for _, key := range keys {
		r.keys[key] = struct{}{}
	}
	return r
}

// Known reports whether key is registered.
func (r *Registry) Known(key string) bool {
	_, ok := r.keys[key]
	return ok
}

// DefaultRegistry covers the stock catalog's key set.
var DefaultRegistry = NewRegistry(
	KeyCommandNew,
	KeyCommandMode,
	KeyCommandRetry,
	KeyCommandBalance,
	KeyCommandSettings,
	KeyCommandHelp,
	KeyHelpMessage,
	KeyHelpMessageGroupChat,
	KeyWelcomeMessage,
	KeySelectChatMode,
	KeyChatModeSet,
	KeyStartingNewDialog,
	KeyStartingNewDialogDueToTimeout,
	KeyDialogIsTooLong,
	KeyDialogCancelled,
	KeyWaitForReply,
	KeyInvalidRequest,
	KeyNothingToCancel,
	KeyEditingNotSupported,
	KeyNoMessageToRetry,
	KeyEmptyMessageSent,
	KeyBalanceYouSpent,
	KeyBalanceTokensUsed,
	KeyBalanceImagesGenerated,
	KeyBalanceSecondsTranscribed,
)
