package config

import "strings"

// MissingError reports which account fields are not configured. It keeps
// the three absence cases (no Steam ID, no API key, neither) separate so
// the CLI can name exactly what to set.
type MissingError struct {
	SteamID bool
	APIKey  bool
}

func (e *MissingError) Error() string {
	switch {
	case e.SteamID && e.APIKey:
		return "no Steam ID or API key configured"
	case e.SteamID:
		return "no Steam ID configured"
	case e.APIKey:
		return "no Steam API key configured"
	default:
		return "configuration missing"
	}
}

// Guidance returns user-facing help naming the setup flags and env vars
// for each missing field.
func (e *MissingError) Guidance() string {
	var b strings.Builder
	if e.SteamID {
		b.WriteString("Set your Steam ID with:\n")
		b.WriteString("  cheevo setup --steam-id <id or vanity name>\n")
		b.WriteString("or export one of: " + strings.Join(SteamIDEnvVars, ", ") + "\n")
	}
	if e.APIKey {
		if e.SteamID {
			b.WriteString("\n")
		}
		b.WriteString("Set your Steam Web API key with:\n")
		b.WriteString("  cheevo setup --api-key <key>\n")
		b.WriteString("or export one of: " + strings.Join(APIKeyEnvVars, ", ") + "\n")
		b.WriteString("Get a key at https://steamcommunity.com/dev/apikey\n")
	}
	return b.String()
}
