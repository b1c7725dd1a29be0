package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Render values as readable, reference-annotated text"
	MsgRootLong     = `exporter renders structured documents (YAML, JSON, TOML, XML) the way the
export engine renders in-memory values: nested, indented, with every container
numbered so shared and recursive references show up as &N backreferences.`
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgRenderShort  = "Render a document"
	MsgRenderLong   = `Render decodes a document and prints its export.

With no file, or with "-", the document is read from standard input. The
format is taken from --format, then from input.format in the configuration,
then from the file extension. Standard input defaults to YAML, which also
accepts JSON.`
	MsgRenderExample = `  exporter render config.yaml
  exporter render --short data.json
  cat pom.xml | exporter render --format xml -`

	// Output
	MsgVersionFormat = "exporter version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "config file (default is $XDG_CONFIG_HOME/exporter/config.toml)"
	MsgFlagFormat    = "input format: yaml, json, toml or xml"
	MsgFlagShort     = "print the single-line shortened form"
	MsgFlagMaxLength = "fall back to the shortened form above this many characters (0 = no limit)"
	MsgFlagColor     = "color output: auto, always or never"
)

// MsgUsageTemplate is the cobra usage template with bold section headers.
const MsgUsageTemplate = `{{"usage" | boldUpper}}
{{if .Runnable}}  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{"aliases" | boldUpper}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{"examples" | boldUpper}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{"commands" | boldUpper}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{"flags" | boldUpper}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{"global flags" | boldUpper}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`
