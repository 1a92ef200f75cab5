package discord

// Friendly message constants for Discord responses
const (
	MsgNotEnoughGold = "⚠️ **Not Enough Gold!**\nYou don't have enough coins for this."

	MsgItemNotFound = "❓ **Item Not Found**\nMaybe check the spelling?"

	MsgUserNotFound = "👤 **User Not Found**\nSend a message first to get started."

	MsgCooldownActive = "⏳ **Whoa there!**\nYou need to wait a bit before doing that again."

	MsgLevelTooLow = "🔒 **Level Too Low**\nKeep adventuring and come back later."

	MsgServerUnreachable = "🔌 **Server Unreachable**\nThe realm is taking a nap. Try again shortly."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors shared across commands.
const (
	ColorGreen  = 0x2ecc71
	ColorRed    = 0xe74c3c
	ColorBlue   = 0x3498db
	ColorGold   = 0xf1c40f
	ColorPurple = 0x9b59b6
	ColorOrange = 0xe67e22
	ColorMuted  = 0x95a5a6
)
