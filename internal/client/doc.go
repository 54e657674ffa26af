// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line reward client.
//
// A run reads a JSON file of transactions, submits it to the reward server
// through an [adapter.RewardAdapter], prints the monthly rewards as a table
// and optionally copies the JSON result to the system clipboard.
package client
