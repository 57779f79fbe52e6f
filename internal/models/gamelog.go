package models

import (
	"fmt"
	"time"
)

// GameLog is one played game as published in the retrosheet game logs.
//
// The information used here was obtained free of charge from and is
// copyrighted by Retrosheet. Interested parties may contact Retrosheet at
// "www.retrosheet.org".
//
// The source files carry no header row; GameLogColumns is the fixed 161-name
// positional contract the adapter maps them onto. A mismatch silently
// misaligns every field, so the list is a contract, not configuration.
type GameLog struct {
	ID			int64		`db:"id"`
	Date			time.Time	`db:"date"`
	GameSeriesNumber	int64		`db:"game_series_number"`
	DOW			string		`db:"dow"`
	VisitingTeam		string		`db:"visiting_team"`
	VisitingLeague		string		`db:"visiting_league"`
	VisitingTeamGameNumber	int64		`db:"visiting_team_game_number"`
	HomeTeam		string		`db:"home_team"`
	HomeLeague		string		`db:"home_league"`
	HomeTeamGameNumber	int64		`db:"home_team_game_number"`
	VisitingScore		int64		`db:"visiting_score"`
	HomeScore		int64		`db:"home_score"`
	NumberOuts		int64		`db:"number_outs"`
	DayNight		string		`db:"day_night"`
	CompletionInfo		string		`db:"completion_info"`
	ForfeitInfo		string		`db:"forfeit_info"`
	ProtestInfo		string		`db:"protest_info"`
	ParkID			string		`db:"park_id"`
	Attendance		int64		`db:"attendance"`
	TimeOfGame		int64		`db:"time_of_game"`
	VisitingLineScore	string		`db:"visiting_line_score"`
	HomeLineScore		string		`db:"home_line_score"`
	VisitingAB		int64		`db:"visiting_ab"`
	VisitingB1		int64		`db:"visiting_b1"`
	VisitingB2		int64		`db:"visiting_b2"`
	VisitingB3		int64		`db:"visiting_b3"`
	VisitingHR		int64		`db:"visiting_hr"`
	VisitingRBI		int64		`db:"visiting_rbi"`
	VisitingSH		int64		`db:"visiting_sh"`
	VisitingSF		int64		`db:"visiting_sf"`
	VisitingHBP		int64		`db:"visiting_hbp"`
	VisitingBB		int64		`db:"visiting_bb"`
	VisitingIBB		int64		`db:"visiting_ibb"`
	VisitingK		int64		`db:"visiting_k"`
	VisitingSB		int64		`db:"visiting_sb"`
	VisitingCS		int64		`db:"visiting_cs"`
	VisitingGDP		int64		`db:"visiting_gdp"`
	VisitingINT		int64		`db:"visiting_int"`
	VisitingLOB		int64		`db:"visiting_lob"`
	VisitingPitchersUsed	int64		`db:"visiting_pitchers_used"`
	VisitingIndividualER	int64		`db:"visiting_individual_er"`
	VisitingTeamER		int64		`db:"visiting_team_er"`
	VisitingWP		int64		`db:"visiting_wp"`
	VisitingBK		int64		`db:"visiting_bk"`
	VisitingPO		int64		`db:"visiting_po"`
	VisitingA		int64		`db:"visiting_a"`
	VisitingE		int64		`db:"visiting_e"`
	VisitingPassedBall	int64		`db:"visiting_passed_ball"`
	VisitingDP		int64		`db:"visiting_dp"`
	VisitingTP		int64		`db:"visiting_tp"`
	HomeAB			int64		`db:"home_ab"`
	HomeB1			int64		`db:"home_b1"`
	HomeB2			int64		`db:"home_b2"`
	HomeB3			int64		`db:"home_b3"`
	HomeHR			int64		`db:"home_hr"`
	HomeRBI			int64		`db:"home_rbi"`
	HomeSH			int64		`db:"home_sh"`
	HomeSF			int64		`db:"home_sf"`
	HomeHBP			int64		`db:"home_hbp"`
	HomeBB			int64		`db:"home_bb"`
	HomeIBB			int64		`db:"home_ibb"`
	HomeK			int64		`db:"home_k"`
	HomeSB			int64		`db:"home_sb"`
	HomeCS			int64		`db:"home_cs"`
	HomeGDP			int64		`db:"home_gdp"`
	HomeINT			int64		`db:"home_int"`
	HomeLOB			int64		`db:"home_lob"`
	HomePitchersUsed	int64		`db:"home_pitchers_used"`
	HomeIndividualER	int64		`db:"home_individual_er"`
	HomeTeamER		int64		`db:"home_team_er"`
	HomeWP			int64		`db:"home_wp"`
	HomeBK			int64		`db:"home_bk"`
	HomePO			int64		`db:"home_po"`
	HomeA			int64		`db:"home_a"`
	HomeE			int64		`db:"home_e"`
	HomePassedBall		int64		`db:"home_passed_ball"`
	HomeDP			int64		`db:"home_dp"`
	HomeTP			int64		`db:"home_tp"`
	HPUmpireID		string		`db:"hp_umpire_id"`
	HPUmpireName		string		`db:"hp_umpire_name"`
	B1UmpireID		string		`db:"b1_umpire_id"`
	B1UmpireName		string		`db:"b1_umpire_name"`
	B2UmpireID		string		`db:"b2_umpire_id"`
	B2UmpireName		string		`db:"b2_umpire_name"`
	B3UmpireID		string		`db:"b3_umpire_id"`
	B3UmpireName		string		`db:"b3_umpire_name"`
	LFUmpireID		string		`db:"lf_umpire_id"`
	LFUmpireName		string		`db:"lf_umpire_name"`
	RFUmpireID		string		`db:"rf_umpire_id"`
	RFUmpireName		string		`db:"rf_umpire_name"`
	VisitingManagerID	string		`db:"visiting_manager_id"`
	VisitingManagerName	string		`db:"visiting_manager_name"`
	HomeManagerID		string		`db:"home_manager_id"`
	HomeManagerName		string		`db:"home_manager_name"`
	WinningPitcherID	string		`db:"winning_pitcher_id"`
	WinningPitcherName	string		`db:"winning_pitcher_name"`
	LosingPitcherID		string		`db:"losing_pitcher_id"`
	LosingPitcherName	string		`db:"losing_pitcher_name"`
	SavingPitcherID		string		`db:"saving_pitcher_id"`
	SavingPitcherName	string		`db:"saving_pitcher_name"`
	GameWinRBIID		string		`db:"game_win_rbi_id"`
	GameWinRBIName		string		`db:"game_win_rbi_name"`
	VisitingStartingPID	string		`db:"visiting_starting_p_id"`
	VisitingStartingPName	string		`db:"visiting_starting_p_name"`
	HomeStartingPID		string		`db:"home_starting_p_id"`
	HomeStartingPName	string		`db:"home_starting_p_name"`
	VisitingBatter1ID	string		`db:"visiting_batter1_id"`
	VisitingBatter1Name	string		`db:"visiting_batter1_name"`
	VisitingBatter1Pos	int64		`db:"visiting_batter1_pos"`
	VisitingBatter2ID	string		`db:"visiting_batter2_id"`
	VisitingBatter2Name	string		`db:"visiting_batter2_name"`
	VisitingBatter2Pos	int64		`db:"visiting_batter2_pos"`
	VisitingBatter3ID	string		`db:"visiting_batter3_id"`
	VisitingBatter3Name	string		`db:"visiting_batter3_name"`
	VisitingBatter3Pos	int64		`db:"visiting_batter3_pos"`
	VisitingBatter4ID	string		`db:"visiting_batter4_id"`
	VisitingBatter4Name	string		`db:"visiting_batter4_name"`
	VisitingBatter4Pos	int64		`db:"visiting_batter4_pos"`
	VisitingBatter5ID	string		`db:"visiting_batter5_id"`
	VisitingBatter5Name	string		`db:"visiting_batter5_name"`
	VisitingBatter5Pos	int64		`db:"visiting_batter5_pos"`
	VisitingBatter6ID	string		`db:"visiting_batter6_id"`
	VisitingBatter6Name	string		`db:"visiting_batter6_name"`
	VisitingBatter6Pos	int64		`db:"visiting_batter6_pos"`
	VisitingBatter7ID	string		`db:"visiting_batter7_id"`
	VisitingBatter7Name	string		`db:"visiting_batter7_name"`
	VisitingBatter7Pos	int64		`db:"visiting_batter7_pos"`
	VisitingBatter8ID	string		`db:"visiting_batter8_id"`
	VisitingBatter8Name	string		`db:"visiting_batter8_name"`
	VisitingBatter8Pos	int64		`db:"visiting_batter8_pos"`
	VisitingBatter9ID	string		`db:"visiting_batter9_id"`
	VisitingBatter9Name	string		`db:"visiting_batter9_name"`
	VisitingBatter9Pos	int64		`db:"visiting_batter9_pos"`
	HomeBatter1ID		string		`db:"home_batter1_id"`
	HomeBatter1Name		string		`db:"home_batter1_name"`
	HomeBatter1Pos		int64		`db:"home_batter1_pos"`
	HomeBatter2ID		string		`db:"home_batter2_id"`
	HomeBatter2Name		string		`db:"home_batter2_name"`
	HomeBatter2Pos		int64		`db:"home_batter2_pos"`
	HomeBatter3ID		string		`db:"home_batter3_id"`
	HomeBatter3Name		string		`db:"home_batter3_name"`
	HomeBatter3Pos		int64		`db:"home_batter3_pos"`
	HomeBatter4ID		string		`db:"home_batter4_id"`
	HomeBatter4Name		string		`db:"home_batter4_name"`
	HomeBatter4Pos		int64		`db:"home_batter4_pos"`
	HomeBatter5ID		string		`db:"home_batter5_id"`
	HomeBatter5Name		string		`db:"home_batter5_name"`
	HomeBatter5Pos		int64		`db:"home_batter5_pos"`
	HomeBatter6ID		string		`db:"home_batter6_id"`
	HomeBatter6Name		string		`db:"home_batter6_name"`
	HomeBatter6Pos		int64		`db:"home_batter6_pos"`
	HomeBatter7ID		string		`db:"home_batter7_id"`
	HomeBatter7Name		string		`db:"home_batter7_name"`
	HomeBatter7Pos		int64		`db:"home_batter7_pos"`
	HomeBatter8ID		string		`db:"home_batter8_id"`
	HomeBatter8Name		string		`db:"home_batter8_name"`
	HomeBatter8Pos		int64		`db:"home_batter8_pos"`
	HomeBatter9ID		string		`db:"home_batter9_id"`
	HomeBatter9Name		string		`db:"home_batter9_name"`
	HomeBatter9Pos		int64		`db:"home_batter9_pos"`
	AdditionalInformation	string		`db:"additional_information"`
	AcquisitionInformation	string		`db:"acquisition_information"`
}

// GameLogColumns is the positional column contract for the headerless
// retrosheet game log CSV, in source order.
var GameLogColumns = []string{
	"date", "game_series_number", "dow",
	"visiting_team", "visiting_league", "visiting_team_game_number",
	"home_team", "home_league", "home_team_game_number",
	"visiting_score", "home_score", "number_outs",
	"day_night", "completion_info", "forfeit_info",
	"protest_info", "park_id", "attendance",
	"time_of_game", "visiting_line_score", "home_line_score",
	"visiting_ab", "visiting_b1", "visiting_b2",
	"visiting_b3", "visiting_hr", "visiting_rbi",
	"visiting_sh", "visiting_sf", "visiting_hbp",
	"visiting_bb", "visiting_ibb", "visiting_k",
	"visiting_sb", "visiting_cs", "visiting_gdp",
	"visiting_int", "visiting_lob", "visiting_pitchers_used",
	"visiting_individual_er", "visiting_team_er", "visiting_wp",
	"visiting_bk", "visiting_po", "visiting_a",
	"visiting_e", "visiting_passed_ball", "visiting_dp",
	"visiting_tp", "home_ab", "home_b1",
	"home_b2", "home_b3", "home_hr",
	"home_rbi", "home_sh", "home_sf",
	"home_hbp", "home_bb", "home_ibb",
	"home_k", "home_sb", "home_cs",
	"home_gdp", "home_int", "home_lob",
	"home_pitchers_used", "home_individual_er", "home_team_er",
	"home_wp", "home_bk", "home_po",
	"home_a", "home_e", "home_passed_ball",
	"home_dp", "home_tp", "hp_umpire_id",
	"hp_umpire_name", "b1_umpire_id", "b1_umpire_name",
	"b2_umpire_id", "b2_umpire_name", "b3_umpire_id",
	"b3_umpire_name", "lf_umpire_id", "lf_umpire_name",
	"rf_umpire_id", "rf_umpire_name", "visiting_manager_id",
	"visiting_manager_name", "home_manager_id", "home_manager_name",
	"winning_pitcher_id", "winning_pitcher_name", "losing_pitcher_id",
	"losing_pitcher_name", "saving_pitcher_id", "saving_pitcher_name",
	"game_win_rbi_id", "game_win_rbi_name", "visiting_starting_p_id",
	"visiting_starting_p_name", "home_starting_p_id", "home_starting_p_name",
	"visiting_batter1_id", "visiting_batter1_name", "visiting_batter1_pos",
	"visiting_batter2_id", "visiting_batter2_name", "visiting_batter2_pos",
	"visiting_batter3_id", "visiting_batter3_name", "visiting_batter3_pos",
	"visiting_batter4_id", "visiting_batter4_name", "visiting_batter4_pos",
	"visiting_batter5_id", "visiting_batter5_name", "visiting_batter5_pos",
	"visiting_batter6_id", "visiting_batter6_name", "visiting_batter6_pos",
	"visiting_batter7_id", "visiting_batter7_name", "visiting_batter7_pos",
	"visiting_batter8_id", "visiting_batter8_name", "visiting_batter8_pos",
	"visiting_batter9_id", "visiting_batter9_name", "visiting_batter9_pos",
	"home_batter1_id", "home_batter1_name", "home_batter1_pos",
	"home_batter2_id", "home_batter2_name", "home_batter2_pos",
	"home_batter3_id", "home_batter3_name", "home_batter3_pos",
	"home_batter4_id", "home_batter4_name", "home_batter4_pos",
	"home_batter5_id", "home_batter5_name", "home_batter5_pos",
	"home_batter6_id", "home_batter6_name", "home_batter6_pos",
	"home_batter7_id", "home_batter7_name", "home_batter7_pos",
	"home_batter8_id", "home_batter8_name", "home_batter8_pos",
	"home_batter9_id", "home_batter9_name", "home_batter9_pos",
	"additional_information", "acquisition_information",
}

// NewGameLog builds a game log record from a normalized field mapping. Every
// destination field is assigned explicitly; unknown keys are rejected rather
// than silently accepted.
func NewGameLog(fields map[string]any) (*GameLog, error) {
	g := &GameLog{}
	for key, value := range fields {
		switch key {
		case "date":
			g.Date = asDate(value)
		case "game_series_number":
			g.GameSeriesNumber = asInt(value)
		case "dow":
			g.DOW = asString(value)
		case "visiting_team":
			g.VisitingTeam = asString(value)
		case "visiting_league":
			g.VisitingLeague = asString(value)
		case "visiting_team_game_number":
			g.VisitingTeamGameNumber = asInt(value)
		case "home_team":
			g.HomeTeam = asString(value)
		case "home_league":
			g.HomeLeague = asString(value)
		case "home_team_game_number":
			g.HomeTeamGameNumber = asInt(value)
		case "visiting_score":
			g.VisitingScore = asInt(value)
		case "home_score":
			g.HomeScore = asInt(value)
		case "number_outs":
			g.NumberOuts = asInt(value)
		case "day_night":
			g.DayNight = asString(value)
		case "completion_info":
			g.CompletionInfo = asString(value)
		case "forfeit_info":
			g.ForfeitInfo = asString(value)
		case "protest_info":
			g.ProtestInfo = asString(value)
		case "park_id":
			g.ParkID = asString(value)
		case "attendance":
			g.Attendance = asInt(value)
		case "time_of_game":
			g.TimeOfGame = asInt(value)
		case "visiting_line_score":
			g.VisitingLineScore = asString(value)
		case "home_line_score":
			g.HomeLineScore = asString(value)
		case "visiting_ab":
			g.VisitingAB = asInt(value)
		case "visiting_b1":
			g.VisitingB1 = asInt(value)
		case "visiting_b2":
			g.VisitingB2 = asInt(value)
		case "visiting_b3":
			g.VisitingB3 = asInt(value)
		case "visiting_hr":
			g.VisitingHR = asInt(value)
		case "visiting_rbi":
			g.VisitingRBI = asInt(value)
		case "visiting_sh":
			g.VisitingSH = asInt(value)
		case "visiting_sf":
			g.VisitingSF = asInt(value)
		case "visiting_hbp":
			g.VisitingHBP = asInt(value)
		case "visiting_bb":
			g.VisitingBB = asInt(value)
		case "visiting_ibb":
			g.VisitingIBB = asInt(value)
		case "visiting_k":
			g.VisitingK = asInt(value)
		case "visiting_sb":
			g.VisitingSB = asInt(value)
		case "visiting_cs":
			g.VisitingCS = asInt(value)
		case "visiting_gdp":
			g.VisitingGDP = asInt(value)
		case "visiting_int":
			g.VisitingINT = asInt(value)
		case "visiting_lob":
			g.VisitingLOB = asInt(value)
		case "visiting_pitchers_used":
			g.VisitingPitchersUsed = asInt(value)
		case "visiting_individual_er":
			g.VisitingIndividualER = asInt(value)
		case "visiting_team_er":
			g.VisitingTeamER = asInt(value)
		case "visiting_wp":
			g.VisitingWP = asInt(value)
		case "visiting_bk":
			g.VisitingBK = asInt(value)
		case "visiting_po":
			g.VisitingPO = asInt(value)
		case "visiting_a":
			g.VisitingA = asInt(value)
		case "visiting_e":
			g.VisitingE = asInt(value)
		case "visiting_passed_ball":
			g.VisitingPassedBall = asInt(value)
		case "visiting_dp":
			g.VisitingDP = asInt(value)
		case "visiting_tp":
			g.VisitingTP = asInt(value)
		case "home_ab":
			g.HomeAB = asInt(value)
		case "home_b1":
			g.HomeB1 = asInt(value)
		case "home_b2":
			g.HomeB2 = asInt(value)
		case "home_b3":
			g.HomeB3 = asInt(value)
		case "home_hr":
			g.HomeHR = asInt(value)
		case "home_rbi":
			g.HomeRBI = asInt(value)
		case "home_sh":
			g.HomeSH = asInt(value)
		case "home_sf":
			g.HomeSF = asInt(value)
		case "home_hbp":
			g.HomeHBP = asInt(value)
		case "home_bb":
			g.HomeBB = asInt(value)
		case "home_ibb":
			g.HomeIBB = asInt(value)
		case "home_k":
			g.HomeK = asInt(value)
		case "home_sb":
			g.HomeSB = asInt(value)
		case "home_cs":
			g.HomeCS = asInt(value)
		case "home_gdp":
			g.HomeGDP = asInt(value)
		case "home_int":
			g.HomeINT = asInt(value)
		case "home_lob":
			g.HomeLOB = asInt(value)
		case "home_pitchers_used":
			g.HomePitchersUsed = asInt(value)
		case "home_individual_er":
			g.HomeIndividualER = asInt(value)
		case "home_team_er":
			g.HomeTeamER = asInt(value)
		case "home_wp":
			g.HomeWP = asInt(value)
		case "home_bk":
			g.HomeBK = asInt(value)
		case "home_po":
			g.HomePO = asInt(value)
		case "home_a":
			g.HomeA = asInt(value)
		case "home_e":
			g.HomeE = asInt(value)
		case "home_passed_ball":
			g.HomePassedBall = asInt(value)
		case "home_dp":
			g.HomeDP = asInt(value)
		case "home_tp":
			g.HomeTP = asInt(value)
		case "hp_umpire_id":
			g.HPUmpireID = asString(value)
		case "hp_umpire_name":
			g.HPUmpireName = asString(value)
		case "b1_umpire_id":
			g.B1UmpireID = asString(value)
		case "b1_umpire_name":
			g.B1UmpireName = asString(value)
		case "b2_umpire_id":
			g.B2UmpireID = asString(value)
		case "b2_umpire_name":
			g.B2UmpireName = asString(value)
		case "b3_umpire_id":
			g.B3UmpireID = asString(value)
		case "b3_umpire_name":
			g.B3UmpireName = asString(value)
		case "lf_umpire_id":
			g.LFUmpireID = asString(value)
		case "lf_umpire_name":
			g.LFUmpireName = asString(value)
		case "rf_umpire_id":
			g.RFUmpireID = asString(value)
		case "rf_umpire_name":
			g.RFUmpireName = asString(value)
		case "visiting_manager_id":
			g.VisitingManagerID = asString(value)
		case "visiting_manager_name":
			g.VisitingManagerName = asString(value)
		case "home_manager_id":
			g.HomeManagerID = asString(value)
		case "home_manager_name":
			g.HomeManagerName = asString(value)
		case "winning_pitcher_id":
			g.WinningPitcherID = asString(value)
		case "winning_pitcher_name":
			g.WinningPitcherName = asString(value)
		case "losing_pitcher_id":
			g.LosingPitcherID = asString(value)
		case "losing_pitcher_name":
			g.LosingPitcherName = asString(value)
		case "saving_pitcher_id":
			g.SavingPitcherID = asString(value)
		case "saving_pitcher_name":
			g.SavingPitcherName = asString(value)
		case "game_win_rbi_id":
			g.GameWinRBIID = asString(value)
		case "game_win_rbi_name":
			g.GameWinRBIName = asString(value)
		case "visiting_starting_p_id":
			g.VisitingStartingPID = asString(value)
		case "visiting_starting_p_name":
			g.VisitingStartingPName = asString(value)
		case "home_starting_p_id":
			g.HomeStartingPID = asString(value)
		case "home_starting_p_name":
			g.HomeStartingPName = asString(value)
		case "visiting_batter1_id":
			g.VisitingBatter1ID = asString(value)
		case "visiting_batter1_name":
			g.VisitingBatter1Name = asString(value)
		case "visiting_batter1_pos":
			g.VisitingBatter1Pos = asInt(value)
		case "visiting_batter2_id":
			g.VisitingBatter2ID = asString(value)
		case "visiting_batter2_name":
			g.VisitingBatter2Name = asString(value)
		case "visiting_batter2_pos":
			g.VisitingBatter2Pos = asInt(value)
		case "visiting_batter3_id":
			g.VisitingBatter3ID = asString(value)
		case "visiting_batter3_name":
			g.VisitingBatter3Name = asString(value)
		case "visiting_batter3_pos":
			g.VisitingBatter3Pos = asInt(value)
		case "visiting_batter4_id":
			g.VisitingBatter4ID = asString(value)
		case "visiting_batter4_name":
			g.VisitingBatter4Name = asString(value)
		case "visiting_batter4_pos":
			g.VisitingBatter4Pos = asInt(value)
		case "visiting_batter5_id":
			g.VisitingBatter5ID = asString(value)
		case "visiting_batter5_name":
			g.VisitingBatter5Name = asString(value)
		case "visiting_batter5_pos":
			g.VisitingBatter5Pos = asInt(value)
		case "visiting_batter6_id":
			g.VisitingBatter6ID = asString(value)
		case "visiting_batter6_name":
			g.VisitingBatter6Name = asString(value)
		case "visiting_batter6_pos":
			g.VisitingBatter6Pos = asInt(value)
		case "visiting_batter7_id":
			g.VisitingBatter7ID = asString(value)
		case "visiting_batter7_name":
			g.VisitingBatter7Name = asString(value)
		case "visiting_batter7_pos":
			g.VisitingBatter7Pos = asInt(value)
		case "visiting_batter8_id":
			g.VisitingBatter8ID = asString(value)
		case "visiting_batter8_name":
			g.VisitingBatter8Name = asString(value)
		case "visiting_batter8_pos":
			g.VisitingBatter8Pos = asInt(value)
		case "visiting_batter9_id":
			g.VisitingBatter9ID = asString(value)
		case "visiting_batter9_name":
			g.VisitingBatter9Name = asString(value)
		case "visiting_batter9_pos":
			g.VisitingBatter9Pos = asInt(value)
		case "home_batter1_id":
			g.HomeBatter1ID = asString(value)
		case "home_batter1_name":
			g.HomeBatter1Name = asString(value)
		case "home_batter1_pos":
			g.HomeBatter1Pos = asInt(value)
		case "home_batter2_id":
			g.HomeBatter2ID = asString(value)
		case "home_batter2_name":
			g.HomeBatter2Name = asString(value)
		case "home_batter2_pos":
			g.HomeBatter2Pos = asInt(value)
		case "home_batter3_id":
			g.HomeBatter3ID = asString(value)
		case "home_batter3_name":
			g.HomeBatter3Name = asString(value)
		case "home_batter3_pos":
			g.HomeBatter3Pos = asInt(value)
		case "home_batter4_id":
			g.HomeBatter4ID = asString(value)
		case "home_batter4_name":
			g.HomeBatter4Name = asString(value)
		case "home_batter4_pos":
			g.HomeBatter4Pos = asInt(value)
		case "home_batter5_id":
			g.HomeBatter5ID = asString(value)
		case "home_batter5_name":
			g.HomeBatter5Name = asString(value)
		case "home_batter5_pos":
			g.HomeBatter5Pos = asInt(value)
		case "home_batter6_id":
			g.HomeBatter6ID = asString(value)
		case "home_batter6_name":
			g.HomeBatter6Name = asString(value)
		case "home_batter6_pos":
			g.HomeBatter6Pos = asInt(value)
		case "home_batter7_id":
			g.HomeBatter7ID = asString(value)
		case "home_batter7_name":
			g.HomeBatter7Name = asString(value)
		case "home_batter7_pos":
			g.HomeBatter7Pos = asInt(value)
		case "home_batter8_id":
			g.HomeBatter8ID = asString(value)
		case "home_batter8_name":
			g.HomeBatter8Name = asString(value)
		case "home_batter8_pos":
			g.HomeBatter8Pos = asInt(value)
		case "home_batter9_id":
			g.HomeBatter9ID = asString(value)
		case "home_batter9_name":
			g.HomeBatter9Name = asString(value)
		case "home_batter9_pos":
			g.HomeBatter9Pos = asInt(value)
		case "additional_information":
			g.AdditionalInformation = asString(value)
		case "acquisition_information":
			g.AcquisitionInformation = asString(value)
		default:
			return nil, fmt.Errorf("gamelog: unknown column %q", key)
		}
	}
	return g, nil
}

// Values returns the row values aligned with GameLogColumns
func (g *GameLog) Values() []any {
	return []any{
		g.Date,
		g.GameSeriesNumber,
		g.DOW,
		g.VisitingTeam,
		g.VisitingLeague,
		g.VisitingTeamGameNumber,
		g.HomeTeam,
		g.HomeLeague,
		g.HomeTeamGameNumber,
		g.VisitingScore,
		g.HomeScore,
		g.NumberOuts,
		g.DayNight,
		g.CompletionInfo,
		g.ForfeitInfo,
		g.ProtestInfo,
		g.ParkID,
		g.Attendance,
		g.TimeOfGame,
		g.VisitingLineScore,
		g.HomeLineScore,
		g.VisitingAB,
		g.VisitingB1,
		g.VisitingB2,
		g.VisitingB3,
		g.VisitingHR,
		g.VisitingRBI,
		g.VisitingSH,
		g.VisitingSF,
		g.VisitingHBP,
		g.VisitingBB,
		g.VisitingIBB,
		g.VisitingK,
		g.VisitingSB,
		g.VisitingCS,
		g.VisitingGDP,
		g.VisitingINT,
		g.VisitingLOB,
		g.VisitingPitchersUsed,
		g.VisitingIndividualER,
		g.VisitingTeamER,
		g.VisitingWP,
		g.VisitingBK,
		g.VisitingPO,
		g.VisitingA,
		g.VisitingE,
		g.VisitingPassedBall,
		g.VisitingDP,
		g.VisitingTP,
		g.HomeAB,
		g.HomeB1,
		g.HomeB2,
		g.HomeB3,
		g.HomeHR,
		g.HomeRBI,
		g.HomeSH,
		g.HomeSF,
		g.HomeHBP,
		g.HomeBB,
		g.HomeIBB,
		g.HomeK,
		g.HomeSB,
		g.HomeCS,
		g.HomeGDP,
		g.HomeINT,
		g.HomeLOB,
		g.HomePitchersUsed,
		g.HomeIndividualER,
		g.HomeTeamER,
		g.HomeWP,
		g.HomeBK,
		g.HomePO,
		g.HomeA,
		g.HomeE,
		g.HomePassedBall,
		g.HomeDP,
		g.HomeTP,
		g.HPUmpireID,
		g.HPUmpireName,
		g.B1UmpireID,
		g.B1UmpireName,
		g.B2UmpireID,
		g.B2UmpireName,
		g.B3UmpireID,
		g.B3UmpireName,
		g.LFUmpireID,
		g.LFUmpireName,
		g.RFUmpireID,
		g.RFUmpireName,
		g.VisitingManagerID,
		g.VisitingManagerName,
		g.HomeManagerID,
		g.HomeManagerName,
		g.WinningPitcherID,
		g.WinningPitcherName,
		g.LosingPitcherID,
		g.LosingPitcherName,
		g.SavingPitcherID,
		g.SavingPitcherName,
		g.GameWinRBIID,
		g.GameWinRBIName,
		g.VisitingStartingPID,
		g.VisitingStartingPName,
		g.HomeStartingPID,
		g.HomeStartingPName,
		g.VisitingBatter1ID,
		g.VisitingBatter1Name,
		g.VisitingBatter1Pos,
		g.VisitingBatter2ID,
		g.VisitingBatter2Name,
		g.VisitingBatter2Pos,
		g.VisitingBatter3ID,
		g.VisitingBatter3Name,
		g.VisitingBatter3Pos,
		g.VisitingBatter4ID,
		g.VisitingBatter4Name,
		g.VisitingBatter4Pos,
		g.VisitingBatter5ID,
		g.VisitingBatter5Name,
		g.VisitingBatter5Pos,
		g.VisitingBatter6ID,
		g.VisitingBatter6Name,
		g.VisitingBatter6Pos,
		g.VisitingBatter7ID,
		g.VisitingBatter7Name,
		g.VisitingBatter7Pos,
		g.VisitingBatter8ID,
		g.VisitingBatter8Name,
		g.VisitingBatter8Pos,
		g.VisitingBatter9ID,
		g.VisitingBatter9Name,
		g.VisitingBatter9Pos,
		g.HomeBatter1ID,
		g.HomeBatter1Name,
		g.HomeBatter1Pos,
		g.HomeBatter2ID,
		g.HomeBatter2Name,
		g.HomeBatter2Pos,
		g.HomeBatter3ID,
		g.HomeBatter3Name,
		g.HomeBatter3Pos,
		g.HomeBatter4ID,
		g.HomeBatter4Name,
		g.HomeBatter4Pos,
		g.HomeBatter5ID,
		g.HomeBatter5Name,
		g.HomeBatter5Pos,
		g.HomeBatter6ID,
		g.HomeBatter6Name,
		g.HomeBatter6Pos,
		g.HomeBatter7ID,
		g.HomeBatter7Name,
		g.HomeBatter7Pos,
		g.HomeBatter8ID,
		g.HomeBatter8Name,
		g.HomeBatter8Pos,
		g.HomeBatter9ID,
		g.HomeBatter9Name,
		g.HomeBatter9Pos,
		g.AdditionalInformation,
		g.AcquisitionInformation,
	}
}
