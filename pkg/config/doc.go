// Package config loads xctemplates configuration.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: $XCTEMPLATES_CONFIG, or
//     $XDG_CONFIG_HOME/xctemplates/config.toml
//  3. XCTEMPLATES_<SECTION>_<KEY> environment variables
package config
