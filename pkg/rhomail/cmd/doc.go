// Package cmd implements the cobra command tree for the rhomail CLI: the
// root send command plus subcommands for version information and shell
// completion.
package cmd
