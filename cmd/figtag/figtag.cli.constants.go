package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameTag     = "tag"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagInput       = "input"
	FlagOutput      = "output"
	FlagConfig      = "config"
	FlagContentRoot = "root"
	FlagStrategy    = "strategy"
	FlagMarkup      = "markup"
	FlagVerbose     = "verbose"
	FlagFormat      = "format"
)

// Flag names - short form
const (
	FlagInputShort       = "i"
	FlagOutputShort      = "o"
	FlagConfigShort      = "c"
	FlagContentRootShort = "r"
	FlagStrategyShort    = "s"
	FlagMarkupShort      = "m"
	FlagVerboseShort     = "v"
	FlagFormatShort      = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultConfig = "figtag.yaml"
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingInput      = "input document required"
	ErrMsgMissingMarkup     = "tag markup required"
	ErrMsgInvalidFlags      = "invalid flags"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgLoadConfigFailed  = "failed to load config"
	ErrMsgEngineFailed      = "failed to create engine"
	ErrMsgExpandFailed      = "document expansion failed"
	ErrMsgRenderFailed      = "tag rendering failed"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgInvalidStrategy   = "invalid error strategy"
)

// Help text templates
const (
	HelpMainUsage = `figtag - Liquid img tag to HTML figure expander

Usage:
    figtag <command> [options]

Commands:
    render      Expand every tag in a document
    tag         Render a single img tag body
    version     Show version information
    help        Show help for a command

Use "figtag help <command>" for more information about a command.`

	HelpRenderUsage = `Expand every tag in a document

Usage:
    figtag render [options]

Options:
    -i, --input <file>      Document file (use "-" for stdin)
    -o, --output <file>     Output file (default: stdout)
    -c, --config <file>     YAML settings file (default: figtag.yaml, optional)
    -r, --root <dir>        Content root images are resolved under
    -s, --strategy <name>   Error strategy: throw, remove, keepraw, log
    -v, --verbose           Log to stderr

Examples:
    figtag render -i post.md
    figtag render -i post.md -r site/content -o post.html
    cat post.md | figtag render -i - -s keepraw`

	HelpTagUsage = `Render a single img tag body

Usage:
    figtag tag [options]

Options:
    -m, --markup <text>     Tag body, e.g. "left /images/a.png Title"
    -c, --config <file>     YAML settings file (default: figtag.yaml, optional)
    -r, --root <dir>        Content root images are resolved under
    -v, --verbose           Log to stderr

Examples:
    figtag tag -m "/images/ninja.png Ninja Attack!"
    figtag tag -m 'left half /images/ninja.png 150 "T" "A" "C"' -r content`

	HelpVersionUsage = `Show version information

Usage:
    figtag version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    figtag help [command]

Commands:
    render      Show help for render command
    tag         Show help for tag command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "figtag version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// CLI metadata
const (
	CLIName = "figtag"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
