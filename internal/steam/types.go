package steam

// SchemaAchievement is one static achievement definition from
// GetSchemaForGame. DisplayName and Description may be absent.
type SchemaAchievement struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

// PlayerAchievement is one per-player unlock record from
// GetPlayerAchievements. Achieved is 0 or 1; UnlockTime is Unix seconds
// and zero for locked achievements.
type PlayerAchievement struct {
	APIName    string `json:"apiname"`
	Achieved   int    `json:"achieved"`
	UnlockTime int64  `json:"unlocktime"`
}

type resolveVanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
	} `json:"response"`
}

type ownedGamesResponse struct {
	Response struct {
		Games []struct {
			AppID int    `json:"appid"`
			Name  string `json:"name"`
		} `json:"games"`
	} `json:"response"`
}

type schemaResponse struct {
	Game struct {
		AvailableGameStats struct {
			Achievements []SchemaAchievement `json:"achievements"`
		} `json:"availableGameStats"`
	} `json:"game"`
}

type playerAchievementsResponse struct {
	PlayerStats struct {
		Achievements []PlayerAchievement `json:"achievements"`
	} `json:"playerstats"`
}
