// Package streamlit models the settings file the Streamlit server reads from
// its per-user configuration directory at startup.
//
// Only the two sections the launcher owns are modelled: [server] and [theme].
// Every value except the server port is a fixed literal. Render produces the
// exact bytes written to disk so repeated launches with the same port yield
// identical files; Decode reads a file back for inspection.
package streamlit
