// Package cmd provides the command-line interface implementation for mdfiles.
//
// It uses the Cobra library for command structure and Fang for styled help
// and error output. The root command maps its flags, and an optional YAML
// config file, onto a finder.Config and hands it to finder.Run.
package cmd
