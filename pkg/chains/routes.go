package chains

import (
	"fmt"
	"sort"
	"strings"
)

// Route describes one supported from→to bridging pair. The source token is
// USDC everywhere except BSC, which only carries a USDT pool; routes touching
// BSC therefore cross between the USDC and USDT pools.
type Route struct {
	Code        string
	Source      string
	Dest        string
	SourceToken string
	DestToken   string
}

// routeTable maps the two-letter mode codes to their routes: every ordered
// pair of the four supported chains.
var routeTable = map[string]Route{
	"pf": {Code: "pf", Source: "polygon", Dest: "fantom", SourceToken: "USDC", DestToken: "USDC"},
	"pa": {Code: "pa", Source: "polygon", Dest: "avalanche", SourceToken: "USDC", DestToken: "USDC"},
	"pb": {Code: "pb", Source: "polygon", Dest: "bsc", SourceToken: "USDC", DestToken: "USDT"},
	"fp": {Code: "fp", Source: "fantom", Dest: "polygon", SourceToken: "USDC", DestToken: "USDC"},
	"fa": {Code: "fa", Source: "fantom", Dest: "avalanche", SourceToken: "USDC", DestToken: "USDC"},
	"fb": {Code: "fb", Source: "fantom", Dest: "bsc", SourceToken: "USDC", DestToken: "USDT"},
	"ap": {Code: "ap", Source: "avalanche", Dest: "polygon", SourceToken: "USDC", DestToken: "USDC"},
	"af": {Code: "af", Source: "avalanche", Dest: "fantom", SourceToken: "USDC", DestToken: "USDC"},
	"ab": {Code: "ab", Source: "avalanche", Dest: "bsc", SourceToken: "USDC", DestToken: "USDT"},
	"bp": {Code: "bp", Source: "bsc", Dest: "polygon", SourceToken: "USDT", DestToken: "USDC"},
	"bf": {Code: "bf", Source: "bsc", Dest: "fantom", SourceToken: "USDT", DestToken: "USDC"},
	"ba": {Code: "ba", Source: "bsc", Dest: "avalanche", SourceToken: "USDT", DestToken: "USDC"},
}

func init() {
	if err := validateRouteTable(); err != nil {
		panic(err)
	}
}

// validateRouteTable checks the table covers exactly every ordered pair of
// supported chains and that the token selections exist on both ends.
func validateRouteTable() error {
	chainCount := len(specs)
	want := chainCount * (chainCount - 1)
	if len(routeTable) != want {
		return fmt.Errorf("route table has %d entries, want %d", len(routeTable), want)
	}

	seen := make(map[string]bool, len(routeTable))
	for code, route := range routeTable {
		if route.Code != code {
			return fmt.Errorf("route %s carries mismatched code %s", code, route.Code)
		}
		if route.Source == route.Dest {
			return fmt.Errorf("route %s maps a chain to itself", code)
		}

		source, ok := specs[route.Source]
		if !ok {
			return fmt.Errorf("route %s references unknown source chain %s", code, route.Source)
		}
		dest, ok := specs[route.Dest]
		if !ok {
			return fmt.Errorf("route %s references unknown destination chain %s", code, route.Dest)
		}
		if _, ok := source.Tokens[route.SourceToken]; !ok {
			return fmt.Errorf("route %s: token %s not available on %s", code, route.SourceToken, route.Source)
		}
		if _, ok := dest.Tokens[route.DestToken]; !ok {
			return fmt.Errorf("route %s: token %s not available on %s", code, route.DestToken, route.Dest)
		}

		pair := route.Source + "-" + route.Dest
		if seen[pair] {
			return fmt.Errorf("duplicate route for %s", pair)
		}
		seen[pair] = true
	}
	return nil
}

// ResolveMode returns the route for a two-letter mode code.
func ResolveMode(code string) (Route, error) {
	route, ok := routeTable[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Route{}, fmt.Errorf("unsupported route %q. Supported routes: %s", code, strings.Join(Modes(), ", "))
	}
	return route, nil
}

// Modes returns all supported mode codes in stable order.
func Modes() []string {
	codes := make([]string, 0, len(routeTable))
	for code := range routeTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Describe renders a route as "polygon-fantom" for logs and usage text.
func (r Route) Describe() string {
	return r.Source + "-" + r.Dest
}
