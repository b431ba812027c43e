// Package config loads, normalizes, and validates stlaunch settings.
//
// It supplies defaults that reproduce the stock launch (write ~/.streamlit,
// run "streamlit run app/app.py" on $PORT), expands tilde paths, reads an
// optional TOML file, and applies STLAUNCH_* environment overrides on top of
// the file.
package config
