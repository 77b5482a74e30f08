package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "" // browser/web
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher
	IconArrow     = "" // arrow right

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	IconConfig   = "" // config
	IconDatabase = "" // database
	IconServer   = "" // server

	// Suggestions
	IconLightbulb = "" // lightbulb
	IconTab       = "" // table
	IconGroup     = "" // object-group
	IconTrash     = "" // trash
	IconClock     = "" // clock
	IconPause     = "" // pause (backoff)
	IconRestore   = "" // rotate-left (reset)
	IconChart     = "" // bar chart
	IconIncognito = "" // user-secret
)
