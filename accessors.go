package lingo

// Resources fronts a Store with one named accessor per stock catalog key, so
// bot code reads r.WaitForReply(lang) instead of spelling keys and variable
// names at every call site.
type Resources struct {
	store *Store
}

// NewResources wraps a store. The zero-config variant is
// NewResources(Default()).
func NewResources(store *Store) *Resources {
	return &Resources{store: store}
}

// SupportedLanguages lists the locales of the current catalog.
func (r *Resources) SupportedLanguages() []string {
	return r.store.Catalog().Locales()
}

func (r *Resources) HelpMessage(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyHelpMessage, nil)
}

func (r *Resources) HelpGroupChatMessage(locale, botUsername string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyHelpMessageGroupChat, Vars{"bot_username": botUsername})
}

func (r *Resources) WelcomeMessage(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyWelcomeMessage, nil)
}

// Command titles, shown in the bot's command menu.

func (r *Resources) NewCommandTitle(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyCommandNew, nil)
}

func (r *Resources) ModeCommandTitle(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyCommandMode, nil)
}

func (r *Resources) RetryCommandTitle(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyCommandRetry, nil)
}

func (r *Resources) BalanceCommandTitle(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyCommandBalance, nil)
}

func (r *Resources) SettingsCommandTitle(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyCommandSettings, nil)
}

func (r *Resources) HelpCommandTitle(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyCommandHelp, nil)
}

// Dialog flow.

func (r *Resources) SelectChatMode(locale string, modesCount int) (string, error) {
	return r.store.Catalog().ResolveCount(locale, KeySelectChatMode, modesCount, nil)
}

func (r *Resources) ChatModeSet(locale, modeName string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyChatModeSet, Vars{"chat_mode_name": modeName})
}

func (r *Resources) StartingNewDialog(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyStartingNewDialog, nil)
}

func (r *Resources) StartingNewDialogDueToTimeout(locale string, timeoutSeconds int) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyStartingNewDialogDueToTimeout, Vars{"timeout": timeoutSeconds})
}

func (r *Resources) DialogIsTooLong(locale string, trimmedMessages int) (string, error) {
	return r.store.Catalog().ResolveCount(locale, KeyDialogIsTooLong, trimmedMessages, nil)
}

func (r *Resources) DialogCancelled(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyDialogCancelled, nil)
}

func (r *Resources) WaitForReply(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyWaitForReply, nil)
}

func (r *Resources) InvalidRequest(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyInvalidRequest, nil)
}

func (r *Resources) NothingToCancel(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyNothingToCancel, nil)
}

func (r *Resources) EditingNotSupported(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyEditingNotSupported, nil)
}

func (r *Resources) NoMessageToRetry(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyNoMessageToRetry, nil)
}

func (r *Resources) EmptyMessageSent(locale string) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyEmptyMessageSent, nil)
}

// Balance report lines.

func (r *Resources) BalanceYouSpent(locale string, amount float64) (string, error) {
	return r.store.Catalog().Resolve(locale, KeyBalanceYouSpent, Vars{"amount": amount})
}

func (r *Resources) BalanceTokensUsed(locale string, tokens int) (string, error) {
	return r.store.Catalog().ResolveCount(locale, KeyBalanceTokensUsed, tokens, nil)
}

func (r *Resources) BalanceImagesGenerated(locale string, images int) (string, error) {
	return r.store.Catalog().ResolveCount(locale, KeyBalanceImagesGenerated, images, nil)
}

func (r *Resources) BalanceSecondsTranscribed(locale string, seconds int) (string, error) {
	return r.store.Catalog().ResolveCount(locale, KeyBalanceSecondsTranscribed, seconds, nil)
}
