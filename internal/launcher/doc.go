// Package launcher prepares the Streamlit settings file and hands the process
// over to the Streamlit server.
//
// Run is strictly sequential: resolve the port, ensure the configuration
// directory, overwrite the settings file, optionally resolve the server
// executable, then exec. Nothing is retried. A FilesystemError means no launch
// was attempted; a LaunchError means the file was written but the server
// could not be started.
package launcher
