// Package config provides configuration loading, merging, and validation
// facilities for the user service, the goal service and goalctl.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Role defaults (ports 3008 and 3009, bcrypt cost 10, timeouts)
//  2. Environment variables, after an optional .env file is loaded;
//     the legacy names PORT, JWT_SECRET and DATABASE_URL are honoured
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the services and
// [GetClientConfig] for goalctl.
package config
