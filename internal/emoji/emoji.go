package emoji

// emojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"error":    {"❌", "[ERR]"},
	"warning":  {"⚠️", "[WRN]"},
	"success":  {"✅", "[OK]"},
	"receipt":  {"🧾", "[BILL]"},
	"subtotal": {"💵", "[$]"},
	"percent":  {"💯", "[%]"},
	"tip":      {"🪙", "[TIP]"},
	"total":    {"💰", "[SUM]"},
	"editing":  {"✏️", "[EDIT]"},
	"file":     {"📄", "[FILE]"},
	"folder":   {"📁", "[DIR]"},
	"target":   {"🎯", "[>]"},
	"hint":     {"💡", "[i]"},
	"watch":    {"👀", "[WATCH]"},
	"help":     {"❓", "[?]"},
	"door":     {"🚪", "[EXIT]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1] // fallback
		}
		return mapping[0] // emoji
	}
	return "[?]" // unknown key
}

// RowEmoji returns the marker drawn next to display row index
func RowEmoji(index int) string {
	switch index {
	case 0:
		return GetEmoji("subtotal")
	case 1:
		return GetEmoji("percent")
	case 2:
		return GetEmoji("tip")
	case 3:
		return GetEmoji("total")
	default:
		return GetEmoji("help")
	}
}
