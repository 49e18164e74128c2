package cli

const usageText = `
PlateMate Client

Usage:
  platemate [OPTIONS] COMMAND

Options:
  -server URL              Backend server URL (default: http://localhost:8080)
  -data PATH               Directory for local databases (default: current directory)
  -sync-interval DURATION  Minimum pause between sync passes (default: 15m)
  -no-realtime             Disable realtime entitlement invalidation
  -config PATH             Path to JSON config file

Commands:
  login                   Login to the PlateMate backend
  logout                  Logout and clear local credentials
  status                  Show session and sync status
  sync                    Synchronize local diary entries with the server
  pending                 Show the number of entries waiting for sync
  add-food [--sync]       Log a meal
  add-water [--sync]      Log water intake
  add-exercise [--sync]   Log a workout
  add-weight [--sync]     Log a weight measurement
  search-foods [QUERY] [--fresh]
                          Search the food catalog (--fresh bypasses the cache)
  search-recipes [QUERY] [--fresh]
                          Search the recipe catalog (--fresh bypasses the cache)
  entitlement [--refresh] Show the current subscription tier
  purge                   Remove old synchronized entries

Examples:
  platemate login
  platemate add-food
  platemate add-water --sync
  platemate search-foods oatmeal
  platemate sync
  platemate -server https://api.platemate.app status
`

const statusTemplate = `
=== PlateMate Status ===

Session:        {{if .Authenticated}}authenticated ({{.UserID}}){{else}}not authenticated{{end}}
Subscription:   {{.Tier}}{{if .Premium}} (premium access){{end}}
Last sync:      {{.LastSync}}
Pending:        {{.Pending}} entry(ies)
`

const entitlementTemplate = `
=== Subscription ===

Tier:           {{.Tier}}
Premium access: {{if .Premium}}yes{{else}}no{{end}}
`
