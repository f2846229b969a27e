package icon

// Icon identifies a symbol of the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Template
)

var icons = map[Icon]variants{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "😵",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・)ノ",
		squares: "🟦",
	},
	Template: {
		emoji:   "🧩",
		nerd:    "",
		plain:   "◆",
		kaomoji: "(｡◕‿◕｡)",
		squares: "🟪",
	},
}
