// SPDX-License-Identifier: MIT

// Package config loads runtime settings for the sptable command.
//
// Precedence, lowest first:
//
//  1. Defaults()
//  2. YAML file (path argument, or $SPTABLE_CONFIG)
//  3. Environment variables with prefix SPTABLE, e.g. SPTABLE_SERVER_ADDR,
//     SPTABLE_LOGGING_LEVEL, SPTABLE_ANALYSIS_STRATEGY
//
// The merged configuration is validated before it is returned.
package config
