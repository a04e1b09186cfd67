// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config resolves the settings that come from the environment.
// Resolution happens once per invocation; callers pass the result on
// rather than reading the environment themselves.
package config
