package lingo

// Message keys of the stock catalog shipped under resources/locales.
const (
	KeyCommandNew      = "command_new"
	KeyCommandMode     = "command_mode"
	KeyCommandRetry    = "command_retry"
	KeyCommandBalance  = "command_balance"
	KeyCommandSettings = "command_settings"
	KeyCommandHelp     = "command_help"

	KeyHelpMessage          = "help_message"
	KeyHelpMessageGroupChat = "help_message_group_chat"
	KeyWelcomeMessage       = "welcome_message"

	KeySelectChatMode                = "select_chat_mode"
	KeyChatModeSet                   = "chat_mode_set"
	KeyStartingNewDialog             = "starting_new_dialog"
	KeyStartingNewDialogDueToTimeout = "starting_new_dialog_due_to_timeout"
	KeyDialogIsTooLong               = "dialog_is_too_long"
	KeyDialogCancelled               = "dialog_cancelled"
	KeyWaitForReply                  = "wait_for_reply"
	KeyInvalidRequest                = "invalid_request"
	KeyNothingToCancel               = "nothing_to_cancel"
	KeyEditingNotSupported           = "editing_not_supported"
	KeyNoMessageToRetry              = "no_message_to_retry"
	KeyEmptyMessageSent              = "empty_message_sent"

	KeyBalanceYouSpent           = "balance_you_spent"
	KeyBalanceTokensUsed         = "balance_tokens_used"
	KeyBalanceImagesGenerated    = "balance_images_generated"
	KeyBalanceSecondsTranscribed = "balance_seconds_transcribed"
)
