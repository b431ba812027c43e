// Package main hosts the stlaunch CLI entrypoint and command graph.
//
// Running stlaunch with no arguments writes the Streamlit settings file and
// hands the process over to the server. The subcommands expose the individual
// steps (write, render, show, check) plus launcher configuration scaffolding.
//
// Keep this package thin: behavior lives in internal/launcher and friends,
// commands here only resolve configuration and format output.
package main
