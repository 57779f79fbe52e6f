package models

import (
	"fmt"
	"time"

	"mlbstats/ingestion/internal/identity"
)

// StatcastPitch is ball-tracking data for a single pitch
type StatcastPitch struct {
	UID				string		`db:"uid"`
	PitchType			string		`db:"pitch_type"`
	GameDate			time.Time	`db:"game_date"`
	ReleaseSpeed			float64		`db:"release_speed"`
	ReleasePOSX			float64		`db:"release_pos_x"`
	ReleasePOSZ			float64		`db:"release_pos_z"`
	PlayerName			string		`db:"player_name"`
	Batter				int64		`db:"batter"`
	Pitcher				int64		`db:"pitcher"`
	Events				string		`db:"events"`
	Description			string		`db:"description"`
	Zone				int64		`db:"zone"`
	Des				string		`db:"des"`
	GameType			string		`db:"game_type"`
	Stand				string		`db:"stand"`
	PThrows				string		`db:"p_throws"`
	HomeTeam			string		`db:"home_team"`
	AwayTeam			string		`db:"away_team"`
	ResultType			string		`db:"result_type"`
	HitLocation			int64		`db:"hit_location"`
	BBType				string		`db:"bb_type"`
	Balls				int64		`db:"balls"`
	Strikes				int64		`db:"strikes"`
	GameYear			int64		`db:"game_year"`
	PfxX				float64		`db:"pfx_x"`
	PfxZ				float64		`db:"pfx_z"`
	PlateX				float64		`db:"plate_x"`
	PlateZ				float64		`db:"plate_z"`
	On3b				int64		`db:"on_3b"`
	On2b				int64		`db:"on_2b"`
	On1b				int64		`db:"on_1b"`
	OutsWhenUp			int64		`db:"outs_when_up"`
	Inning				int64		`db:"inning"`
	InningTopbot			string		`db:"inning_topbot"`
	HcX				float64		`db:"hc_x"`
	HcY				float64		`db:"hc_y"`
	Fielder2			int64		`db:"fielder_2"`
	Umpire				int64		`db:"umpire"`
	SVID				string		`db:"sv_id"`
	Vx0				float64		`db:"vx0"`
	Vy0				float64		`db:"vy0"`
	Vz0				float64		`db:"vz0"`
	Ax				float64		`db:"ax"`
	Ay				float64		`db:"ay"`
	Az				float64		`db:"az"`
	SzTop				float64		`db:"sz_top"`
	SzBot				float64		`db:"sz_bot"`
	HitDistanceSc			int64		`db:"hit_distance_sc"`
	LaunchSpeed			float64		`db:"launch_speed"`
	LaunchAngle			float64		`db:"launch_angle"`
	EffectiveSpeed			float64		`db:"effective_speed"`
	ReleaseSpinRate			int64		`db:"release_spin_rate"`
	ReleaseExtension		float64		`db:"release_extension"`
	GamePK				int64		`db:"game_pk"`
	Pitcher1			int64		`db:"pitcher_1"`
	Fielder21			int64		`db:"fielder_2_1"`
	Fielder3			int64		`db:"fielder_3"`
	Fielder4			int64		`db:"fielder_4"`
	Fielder5			int64		`db:"fielder_5"`
	Fielder6			int64		`db:"fielder_6"`
	Fielder7			int64		`db:"fielder_7"`
	Fielder8			int64		`db:"fielder_8"`
	Fielder9			int64		`db:"fielder_9"`
	ReleasePOSY			float64		`db:"release_pos_y"`
	EstimatedBAUsingSpeedangle	float64		`db:"estimated_ba_using_speedangle"`
	EstimatedWobaUsingSpeedangle	float64		`db:"estimated_woba_using_speedangle"`
	WobaValue			float64		`db:"woba_value"`
	WobaDenom			int64		`db:"woba_denom"`
	BabipValue			int64		`db:"babip_value"`
	IsoValue			int64		`db:"iso_value"`
	LaunchSpeedAngle		int64		`db:"launch_speed_angle"`
	AtBatNumber			int64		`db:"at_bat_number"`
	PitchNumber			int64		`db:"pitch_number"`
	PitchName			string		`db:"pitch_name"`
	HomeScore			int64		`db:"home_score"`
	AwayScore			int64		`db:"away_score"`
	BatScore			int64		`db:"bat_score"`
	FldScore			int64		`db:"fld_score"`
	PostAwayScore			int64		`db:"post_away_score"`
	PostHomeScore			int64		`db:"post_home_score"`
	PostBatScore			int64		`db:"post_bat_score"`
	PostFldScore			int64		`db:"post_fld_score"`
	IfFieldingAlignment		string		`db:"if_fielding_alignment"`
	OfFieldingAlignment		string		`db:"of_fielding_alignment"`
}

// StatcastColumns is the insert column list for the statcast pitching table
var StatcastColumns = []string{
	"uid",
	"pitch_type", "game_date", "release_speed", "release_pos_x",
	"release_pos_z", "player_name", "batter", "pitcher",
	"events", "description", "zone", "des",
	"game_type", "stand", "p_throws", "home_team",
	"away_team", "result_type", "hit_location", "bb_type",
	"balls", "strikes", "game_year", "pfx_x",
	"pfx_z", "plate_x", "plate_z", "on_3b",
	"on_2b", "on_1b", "outs_when_up", "inning",
	"inning_topbot", "hc_x", "hc_y", "fielder_2",
	"umpire", "sv_id", "vx0", "vy0",
	"vz0", "ax", "ay", "az",
	"sz_top", "sz_bot", "hit_distance_sc", "launch_speed",
	"launch_angle", "effective_speed", "release_spin_rate", "release_extension",
	"game_pk", "pitcher_1", "fielder_2_1", "fielder_3",
	"fielder_4", "fielder_5", "fielder_6", "fielder_7",
	"fielder_8", "fielder_9", "release_pos_y", "estimated_ba_using_speedangle",
	"estimated_woba_using_speedangle", "woba_value", "woba_denom", "babip_value",
	"iso_value", "launch_speed_angle", "at_bat_number", "pitch_number",
	"pitch_name", "home_score", "away_score", "bat_score",
	"fld_score", "post_away_score", "post_home_score", "post_bat_score",
	"post_fld_score", "if_fielding_alignment", "of_fielding_alignment",
}

// NewStatcastPitch builds a pitch record from a normalized field mapping,
// assigning every destination field explicitly and rejecting unknown keys.
// The caller is expected to have renamed the source "type" column to
// "result_type" during normalization.
func NewStatcastPitch(fields map[string]any) (*StatcastPitch, error) {
	p := &StatcastPitch{}
	for key, value := range fields {
		switch key {
		case "pitch_type":
			p.PitchType = asString(value)
		case "game_date":
			p.GameDate = asDate(value)
		case "release_speed":
			p.ReleaseSpeed = asFloat(value)
		case "release_pos_x":
			p.ReleasePOSX = asFloat(value)
		case "release_pos_z":
			p.ReleasePOSZ = asFloat(value)
		case "player_name":
			p.PlayerName = asString(value)
		case "batter":
			p.Batter = asInt(value)
		case "pitcher":
			p.Pitcher = asInt(value)
		case "events":
			p.Events = asString(value)
		case "description":
			p.Description = asString(value)
		case "zone":
			p.Zone = asInt(value)
		case "des":
			p.Des = asString(value)
		case "game_type":
			p.GameType = asString(value)
		case "stand":
			p.Stand = asString(value)
		case "p_throws":
			p.PThrows = asString(value)
		case "home_team":
			p.HomeTeam = asString(value)
		case "away_team":
			p.AwayTeam = asString(value)
		case "result_type":
			p.ResultType = asString(value)
		case "hit_location":
			p.HitLocation = asInt(value)
		case "bb_type":
			p.BBType = asString(value)
		case "balls":
			p.Balls = asInt(value)
		case "strikes":
			p.Strikes = asInt(value)
		case "game_year":
			p.GameYear = asInt(value)
		case "pfx_x":
			p.PfxX = asFloat(value)
		case "pfx_z":
			p.PfxZ = asFloat(value)
		case "plate_x":
			p.PlateX = asFloat(value)
		case "plate_z":
			p.PlateZ = asFloat(value)
		case "on_3b":
			p.On3b = asInt(value)
		case "on_2b":
			p.On2b = asInt(value)
		case "on_1b":
			p.On1b = asInt(value)
		case "outs_when_up":
			p.OutsWhenUp = asInt(value)
		case "inning":
			p.Inning = asInt(value)
		case "inning_topbot":
			p.InningTopbot = asString(value)
		case "hc_x":
			p.HcX = asFloat(value)
		case "hc_y":
			p.HcY = asFloat(value)
		case "fielder_2":
			p.Fielder2 = asInt(value)
		case "umpire":
			p.Umpire = asInt(value)
		case "sv_id":
			p.SVID = asString(value)
		case "vx0":
			p.Vx0 = asFloat(value)
		case "vy0":
			p.Vy0 = asFloat(value)
		case "vz0":
			p.Vz0 = asFloat(value)
		case "ax":
			p.Ax = asFloat(value)
		case "ay":
			p.Ay = asFloat(value)
		case "az":
			p.Az = asFloat(value)
		case "sz_top":
			p.SzTop = asFloat(value)
		case "sz_bot":
			p.SzBot = asFloat(value)
		case "hit_distance_sc":
			p.HitDistanceSc = asInt(value)
		case "launch_speed":
			p.LaunchSpeed = asFloat(value)
		case "launch_angle":
			p.LaunchAngle = asFloat(value)
		case "effective_speed":
			p.EffectiveSpeed = asFloat(value)
		case "release_spin_rate":
			p.ReleaseSpinRate = asInt(value)
		case "release_extension":
			p.ReleaseExtension = asFloat(value)
		case "game_pk":
			p.GamePK = asInt(value)
		case "pitcher_1":
			p.Pitcher1 = asInt(value)
		case "fielder_2_1":
			p.Fielder21 = asInt(value)
		case "fielder_3":
			p.Fielder3 = asInt(value)
		case "fielder_4":
			p.Fielder4 = asInt(value)
		case "fielder_5":
			p.Fielder5 = asInt(value)
		case "fielder_6":
			p.Fielder6 = asInt(value)
		case "fielder_7":
			p.Fielder7 = asInt(value)
		case "fielder_8":
			p.Fielder8 = asInt(value)
		case "fielder_9":
			p.Fielder9 = asInt(value)
		case "release_pos_y":
			p.ReleasePOSY = asFloat(value)
		case "estimated_ba_using_speedangle":
			p.EstimatedBAUsingSpeedangle = asFloat(value)
		case "estimated_woba_using_speedangle":
			p.EstimatedWobaUsingSpeedangle = asFloat(value)
		case "woba_value":
			p.WobaValue = asFloat(value)
		case "woba_denom":
			p.WobaDenom = asInt(value)
		case "babip_value":
			p.BabipValue = asInt(value)
		case "iso_value":
			p.IsoValue = asInt(value)
		case "launch_speed_angle":
			p.LaunchSpeedAngle = asInt(value)
		case "at_bat_number":
			p.AtBatNumber = asInt(value)
		case "pitch_number":
			p.PitchNumber = asInt(value)
		case "pitch_name":
			p.PitchName = asString(value)
		case "home_score":
			p.HomeScore = asInt(value)
		case "away_score":
			p.AwayScore = asInt(value)
		case "bat_score":
			p.BatScore = asInt(value)
		case "fld_score":
			p.FldScore = asInt(value)
		case "post_away_score":
			p.PostAwayScore = asInt(value)
		case "post_home_score":
			p.PostHomeScore = asInt(value)
		case "post_bat_score":
			p.PostBatScore = asInt(value)
		case "post_fld_score":
			p.PostFldScore = asInt(value)
		case "if_fielding_alignment":
			p.IfFieldingAlignment = asString(value)
		case "of_fielding_alignment":
			p.OfFieldingAlignment = asString(value)
		default:
			return nil, fmt.Errorf("statcast: unknown column %q", key)
		}
	}
	p.UID = p.uid()
	return p, nil
}

// uid derives the dedup key for a pitch. The (game, pitcher, at-bat,
// pitch-number) tuple is not always unique upstream (pitches re-thrown after
// review share it), so release speed is folded in as a disambiguator. A
// re-measured release speed for the same pitch therefore produces a new key;
// known fragility, kept deliberately.
func (p *StatcastPitch) uid() string {
	return identity.Key(p.GamePK, p.Pitcher, p.AtBatNumber, p.PitchNumber, p.ReleaseSpeed)
}

// Values returns the row values aligned with StatcastColumns
func (p *StatcastPitch) Values() []any {
	return []any{
		p.UID,
		p.PitchType,
		p.GameDate,
		p.ReleaseSpeed,
		p.ReleasePOSX,
		p.ReleasePOSZ,
		p.PlayerName,
		p.Batter,
		p.Pitcher,
		p.Events,
		p.Description,
		p.Zone,
		p.Des,
		p.GameType,
		p.Stand,
		p.PThrows,
		p.HomeTeam,
		p.AwayTeam,
		p.ResultType,
		p.HitLocation,
		p.BBType,
		p.Balls,
		p.Strikes,
		p.GameYear,
		p.PfxX,
		p.PfxZ,
		p.PlateX,
		p.PlateZ,
		p.On3b,
		p.On2b,
		p.On1b,
		p.OutsWhenUp,
		p.Inning,
		p.InningTopbot,
		p.HcX,
		p.HcY,
		p.Fielder2,
		p.Umpire,
		p.SVID,
		p.Vx0,
		p.Vy0,
		p.Vz0,
		p.Ax,
		p.Ay,
		p.Az,
		p.SzTop,
		p.SzBot,
		p.HitDistanceSc,
		p.LaunchSpeed,
		p.LaunchAngle,
		p.EffectiveSpeed,
		p.ReleaseSpinRate,
		p.ReleaseExtension,
		p.GamePK,
		p.Pitcher1,
		p.Fielder21,
		p.Fielder3,
		p.Fielder4,
		p.Fielder5,
		p.Fielder6,
		p.Fielder7,
		p.Fielder8,
		p.Fielder9,
		p.ReleasePOSY,
		p.EstimatedBAUsingSpeedangle,
		p.EstimatedWobaUsingSpeedangle,
		p.WobaValue,
		p.WobaDenom,
		p.BabipValue,
		p.IsoValue,
		p.LaunchSpeedAngle,
		p.AtBatNumber,
		p.PitchNumber,
		p.PitchName,
		p.HomeScore,
		p.AwayScore,
		p.BatScore,
		p.FldScore,
		p.PostAwayScore,
		p.PostHomeScore,
		p.PostBatScore,
		p.PostFldScore,
		p.IfFieldingAlignment,
		p.OfFieldingAlignment,
	}
}
