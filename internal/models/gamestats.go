package models

import (
	"fmt"
	"time"
)

// PlayerGameStats is one player's batting/pitching/fielding line for a single
// game, as published in the retrosplits day-by-day files.
type PlayerGameStats struct {
	UID		string		`db:"uid"`
	GameKey		string		`db:"game_key"`
	GameSource	string		`db:"game_source"`
	GameDate	time.Time	`db:"game_date"`
	GameNumber	int64		`db:"game_number"`
	AppearDate	time.Time	`db:"appear_date"`
	SiteKey		string		`db:"site_key"`
	SeasonPhase	string		`db:"season_phase"`
	TeamAlignment	int64		`db:"team_alignment"`
	TeamKey		string		`db:"team_key"`
	OpponentKey	string		`db:"opponent_key"`
	PersonKey	string		`db:"person_key"`
	Slot		int64		`db:"slot"`
	Seq		int64		`db:"seq"`
	BG		int64		`db:"b_g"`
	BPA		int64		`db:"b_pa"`
	BAB		int64		`db:"b_ab"`
	BR		int64		`db:"b_r"`
	BH		int64		`db:"b_h"`
	BTB		int64		`db:"b_tb"`
	B2B		int64		`db:"b_2b"`
	B3B		int64		`db:"b_3b"`
	BHR		int64		`db:"b_hr"`
	BHR4		int64		`db:"b_hr4"`
	BRBI		int64		`db:"b_rbi"`
	BGW		int64		`db:"b_gw"`
	BBB		int64		`db:"b_bb"`
	BIBB		int64		`db:"b_ibb"`
	BSO		int64		`db:"b_so"`
	BGDP		int64		`db:"b_gdp"`
	BHP		int64		`db:"b_hp"`
	BSH		int64		`db:"b_sh"`
	BSF		int64		`db:"b_sf"`
	BSB		int64		`db:"b_sb"`
	BCS		int64		`db:"b_cs"`
	BXI		int64		`db:"b_xi"`
	BGDH		int64		`db:"b_g_dh"`
	BGPH		int64		`db:"b_g_ph"`
	BGPR		int64		`db:"b_g_pr"`
	PG		int64		`db:"p_g"`
	PGS		int64		`db:"p_gs"`
	PCG		int64		`db:"p_cg"`
	PSHO		int64		`db:"p_sho"`
	PGF		int64		`db:"p_gf"`
	PW		int64		`db:"p_w"`
	PL		int64		`db:"p_l"`
	PSV		int64		`db:"p_sv"`
	POUT		int64		`db:"p_out"`
	PTBF		int64		`db:"p_tbf"`
	PAB		int64		`db:"p_ab"`
	PR		int64		`db:"p_r"`
	PER		int64		`db:"p_er"`
	PH		int64		`db:"p_h"`
	PTB		int64		`db:"p_tb"`
	P2B		int64		`db:"p_2b"`
	P3B		int64		`db:"p_3b"`
	PHR		int64		`db:"p_hr"`
	PHR4		int64		`db:"p_hr4"`
	PBB		int64		`db:"p_bb"`
	PIBB		int64		`db:"p_ibb"`
	PSO		int64		`db:"p_so"`
	PGDP		int64		`db:"p_gdp"`
	PHP		int64		`db:"p_hp"`
	PSH		int64		`db:"p_sh"`
	PSF		int64		`db:"p_sf"`
	PXI		int64		`db:"p_xi"`
	PWP		int64		`db:"p_wp"`
	PBK		int64		`db:"p_bk"`
	PIR		int64		`db:"p_ir"`
	PIRS		int64		`db:"p_irs"`
	PGO		int64		`db:"p_go"`
	PAO		int64		`db:"p_ao"`
	PPitch		int64		`db:"p_pitch"`
	PStrike		int64		`db:"p_strike"`
	F1BPOS		int64		`db:"f_1b_pos"`
	F1BG		int64		`db:"f_1b_g"`
	F1BGS		int64		`db:"f_1b_gs"`
	F1BOUT		int64		`db:"f_1b_out"`
	F1BTC		int64		`db:"f_1b_tc"`
	F1BPO		int64		`db:"f_1b_po"`
	F1BA		int64		`db:"f_1b_a"`
	F1BE		int64		`db:"f_1b_e"`
	F1BDP		int64		`db:"f_1b_dp"`
	F1BTP		int64		`db:"f_1b_tp"`
	F2BPOS		int64		`db:"f_2b_pos"`
	F2BG		int64		`db:"f_2b_g"`
	F2BGS		int64		`db:"f_2b_gs"`
	F2BOUT		int64		`db:"f_2b_out"`
	F2BTC		int64		`db:"f_2b_tc"`
	F2BPO		int64		`db:"f_2b_po"`
	F2BA		int64		`db:"f_2b_a"`
	F2BE		int64		`db:"f_2b_e"`
	F2BDP		int64		`db:"f_2b_dp"`
	F2BTP		int64		`db:"f_2b_tp"`
	F3BPOS		int64		`db:"f_3b_pos"`
	F3BG		int64		`db:"f_3b_g"`
	F3BGS		int64		`db:"f_3b_gs"`
	F3BOUT		int64		`db:"f_3b_out"`
	F3BTC		int64		`db:"f_3b_tc"`
	F3BPO		int64		`db:"f_3b_po"`
	F3BA		int64		`db:"f_3b_a"`
	F3BE		int64		`db:"f_3b_e"`
	F3BDP		int64		`db:"f_3b_dp"`
	F3BTP		int64		`db:"f_3b_tp"`
	FSSPOS		int64		`db:"f_ss_pos"`
	FSSG		int64		`db:"f_ss_g"`
	FSSGS		int64		`db:"f_ss_gs"`
	FSSOUT		int64		`db:"f_ss_out"`
	FSSTC		int64		`db:"f_ss_tc"`
	FSSPO		int64		`db:"f_ss_po"`
	FSSA		int64		`db:"f_ss_a"`
	FSSE		int64		`db:"f_ss_e"`
	FSSDP		int64		`db:"f_ss_dp"`
	FSSTP		int64		`db:"f_ss_tp"`
	FOFPOS		int64		`db:"f_of_pos"`
	FOFG		int64		`db:"f_of_g"`
	FOFGS		int64		`db:"f_of_gs"`
	FOFOUT		int64		`db:"f_of_out"`
	FOFTC		int64		`db:"f_of_tc"`
	FOFPO		int64		`db:"f_of_po"`
	FOFA		int64		`db:"f_of_a"`
	FOFE		int64		`db:"f_of_e"`
	FOFDP		int64		`db:"f_of_dp"`
	FOFTP		int64		`db:"f_of_tp"`
	FLFPOS		int64		`db:"f_lf_pos"`
	FLFG		int64		`db:"f_lf_g"`
	FLFGS		int64		`db:"f_lf_gs"`
	FLFOUT		int64		`db:"f_lf_out"`
	FLFTC		int64		`db:"f_lf_tc"`
	FLFPO		int64		`db:"f_lf_po"`
	FLFA		int64		`db:"f_lf_a"`
	FLFE		int64		`db:"f_lf_e"`
	FLFDP		int64		`db:"f_lf_dp"`
	FLFTP		int64		`db:"f_lf_tp"`
	FCFPOS		int64		`db:"f_cf_pos"`
	FCFG		int64		`db:"f_cf_g"`
	FCFGS		int64		`db:"f_cf_gs"`
	FCFOUT		int64		`db:"f_cf_out"`
	FCFTC		int64		`db:"f_cf_tc"`
	FCFPO		int64		`db:"f_cf_po"`
	FCFA		int64		`db:"f_cf_a"`
	FCFE		int64		`db:"f_cf_e"`
	FCFDP		int64		`db:"f_cf_dp"`
	FCFTP		int64		`db:"f_cf_tp"`
	FRFPOS		int64		`db:"f_rf_pos"`
	FRFG		int64		`db:"f_rf_g"`
	FRFGS		int64		`db:"f_rf_gs"`
	FRFOUT		int64		`db:"f_rf_out"`
	FRFTC		int64		`db:"f_rf_tc"`
	FRFPO		int64		`db:"f_rf_po"`
	FRFA		int64		`db:"f_rf_a"`
	FRFE		int64		`db:"f_rf_e"`
	FRFDP		int64		`db:"f_rf_dp"`
	FRFTP		int64		`db:"f_rf_tp"`
	FCPOS		int64		`db:"f_c_pos"`
	FCG		int64		`db:"f_c_g"`
	FCGS		int64		`db:"f_c_gs"`
	FCOUT		int64		`db:"f_c_out"`
	FCTC		int64		`db:"f_c_tc"`
	FCPO		int64		`db:"f_c_po"`
	FCA		int64		`db:"f_c_a"`
	FCE		int64		`db:"f_c_e"`
	FCDP		int64		`db:"f_c_dp"`
	FCTP		int64		`db:"f_c_tp"`
	FCPB		int64		`db:"f_c_pb"`
	FCXI		int64		`db:"f_c_xi"`
	FPPOS		int64		`db:"f_p_pos"`
	FPG		int64		`db:"f_p_g"`
	FPGS		int64		`db:"f_p_gs"`
	FPOUT		int64		`db:"f_p_out"`
	FPTC		int64		`db:"f_p_tc"`
	FPPO		int64		`db:"f_p_po"`
	FPA		int64		`db:"f_p_a"`
	FPE		int64		`db:"f_p_e"`
	FPDP		int64		`db:"f_p_dp"`
	FPTP		int64		`db:"f_p_tp"`
}

// PlayerGameStatsColumns is the insert column list for the per-game player
// stats table
var PlayerGameStatsColumns = []string{
	"uid",
	"game_key", "game_source", "game_date", "game_number", "appear_date",
	"site_key", "season_phase", "team_alignment", "team_key", "opponent_key",
	"person_key", "slot", "seq", "b_g", "b_pa",
	"b_ab", "b_r", "b_h", "b_tb", "b_2b",
	"b_3b", "b_hr", "b_hr4", "b_rbi", "b_gw",
	"b_bb", "b_ibb", "b_so", "b_gdp", "b_hp",
	"b_sh", "b_sf", "b_sb", "b_cs", "b_xi",
	"b_g_dh", "b_g_ph", "b_g_pr", "p_g", "p_gs",
	"p_cg", "p_sho", "p_gf", "p_w", "p_l",
	"p_sv", "p_out", "p_tbf", "p_ab", "p_r",
	"p_er", "p_h", "p_tb", "p_2b", "p_3b",
	"p_hr", "p_hr4", "p_bb", "p_ibb", "p_so",
	"p_gdp", "p_hp", "p_sh", "p_sf", "p_xi",
	"p_wp", "p_bk", "p_ir", "p_irs", "p_go",
	"p_ao", "p_pitch", "p_strike", "f_1b_pos", "f_1b_g",
	"f_1b_gs", "f_1b_out", "f_1b_tc", "f_1b_po", "f_1b_a",
	"f_1b_e", "f_1b_dp", "f_1b_tp", "f_2b_pos", "f_2b_g",
	"f_2b_gs", "f_2b_out", "f_2b_tc", "f_2b_po", "f_2b_a",
	"f_2b_e", "f_2b_dp", "f_2b_tp", "f_3b_pos", "f_3b_g",
	"f_3b_gs", "f_3b_out", "f_3b_tc", "f_3b_po", "f_3b_a",
	"f_3b_e", "f_3b_dp", "f_3b_tp", "f_ss_pos", "f_ss_g",
	"f_ss_gs", "f_ss_out", "f_ss_tc", "f_ss_po", "f_ss_a",
	"f_ss_e", "f_ss_dp", "f_ss_tp", "f_of_pos", "f_of_g",
	"f_of_gs", "f_of_out", "f_of_tc", "f_of_po", "f_of_a",
	"f_of_e", "f_of_dp", "f_of_tp", "f_lf_pos", "f_lf_g",
	"f_lf_gs", "f_lf_out", "f_lf_tc", "f_lf_po", "f_lf_a",
	"f_lf_e", "f_lf_dp", "f_lf_tp", "f_cf_pos", "f_cf_g",
	"f_cf_gs", "f_cf_out", "f_cf_tc", "f_cf_po", "f_cf_a",
	"f_cf_e", "f_cf_dp", "f_cf_tp", "f_rf_pos", "f_rf_g",
	"f_rf_gs", "f_rf_out", "f_rf_tc", "f_rf_po", "f_rf_a",
	"f_rf_e", "f_rf_dp", "f_rf_tp", "f_c_pos", "f_c_g",
	"f_c_gs", "f_c_out", "f_c_tc", "f_c_po", "f_c_a",
	"f_c_e", "f_c_dp", "f_c_tp", "f_c_pb", "f_c_xi",
	"f_p_pos", "f_p_g", "f_p_gs", "f_p_out", "f_p_tc",
	"f_p_po", "f_p_a", "f_p_e", "f_p_dp", "f_p_tp",
}

// NewPlayerGameStats builds a player game-stats record from a normalized
// field mapping, rejecting unknown keys.
func NewPlayerGameStats(fields map[string]any) (*PlayerGameStats, error) {
	s := &PlayerGameStats{}
	for key, value := range fields {
		switch key {
		case "game_key":
			s.GameKey = asString(value)
		case "game_source":
			s.GameSource = asString(value)
		case "game_date":
			s.GameDate = asDate(value)
		case "game_number":
			s.GameNumber = asInt(value)
		case "appear_date":
			s.AppearDate = asDate(value)
		case "site_key":
			s.SiteKey = asString(value)
		case "season_phase":
			s.SeasonPhase = asString(value)
		case "team_alignment":
			s.TeamAlignment = asInt(value)
		case "team_key":
			s.TeamKey = asString(value)
		case "opponent_key":
			s.OpponentKey = asString(value)
		case "person_key":
			s.PersonKey = asString(value)
		case "slot":
			s.Slot = asInt(value)
		case "seq":
			s.Seq = asInt(value)
		case "b_g":
			s.BG = asInt(value)
		case "b_pa":
			s.BPA = asInt(value)
		case "b_ab":
			s.BAB = asInt(value)
		case "b_r":
			s.BR = asInt(value)
		case "b_h":
			s.BH = asInt(value)
		case "b_tb":
			s.BTB = asInt(value)
		case "b_2b":
			s.B2B = asInt(value)
		case "b_3b":
			s.B3B = asInt(value)
		case "b_hr":
			s.BHR = asInt(value)
		case "b_hr4":
			s.BHR4 = asInt(value)
		case "b_rbi":
			s.BRBI = asInt(value)
		case "b_gw":
			s.BGW = asInt(value)
		case "b_bb":
			s.BBB = asInt(value)
		case "b_ibb":
			s.BIBB = asInt(value)
		case "b_so":
			s.BSO = asInt(value)
		case "b_gdp":
			s.BGDP = asInt(value)
		case "b_hp":
			s.BHP = asInt(value)
		case "b_sh":
			s.BSH = asInt(value)
		case "b_sf":
			s.BSF = asInt(value)
		case "b_sb":
			s.BSB = asInt(value)
		case "b_cs":
			s.BCS = asInt(value)
		case "b_xi":
			s.BXI = asInt(value)
		case "b_g_dh":
			s.BGDH = asInt(value)
		case "b_g_ph":
			s.BGPH = asInt(value)
		case "b_g_pr":
			s.BGPR = asInt(value)
		case "p_g":
			s.PG = asInt(value)
		case "p_gs":
			s.PGS = asInt(value)
		case "p_cg":
			s.PCG = asInt(value)
		case "p_sho":
			s.PSHO = asInt(value)
		case "p_gf":
			s.PGF = asInt(value)
		case "p_w":
			s.PW = asInt(value)
		case "p_l":
			s.PL = asInt(value)
		case "p_sv":
			s.PSV = asInt(value)
		case "p_out":
			s.POUT = asInt(value)
		case "p_tbf":
			s.PTBF = asInt(value)
		case "p_ab":
			s.PAB = asInt(value)
		case "p_r":
			s.PR = asInt(value)
		case "p_er":
			s.PER = asInt(value)
		case "p_h":
			s.PH = asInt(value)
		case "p_tb":
			s.PTB = asInt(value)
		case "p_2b":
			s.P2B = asInt(value)
		case "p_3b":
			s.P3B = asInt(value)
		case "p_hr":
			s.PHR = asInt(value)
		case "p_hr4":
			s.PHR4 = asInt(value)
		case "p_bb":
			s.PBB = asInt(value)
		case "p_ibb":
			s.PIBB = asInt(value)
		case "p_so":
			s.PSO = asInt(value)
		case "p_gdp":
			s.PGDP = asInt(value)
		case "p_hp":
			s.PHP = asInt(value)
		case "p_sh":
			s.PSH = asInt(value)
		case "p_sf":
			s.PSF = asInt(value)
		case "p_xi":
			s.PXI = asInt(value)
		case "p_wp":
			s.PWP = asInt(value)
		case "p_bk":
			s.PBK = asInt(value)
		case "p_ir":
			s.PIR = asInt(value)
		case "p_irs":
			s.PIRS = asInt(value)
		case "p_go":
			s.PGO = asInt(value)
		case "p_ao":
			s.PAO = asInt(value)
		case "p_pitch":
			s.PPitch = asInt(value)
		case "p_strike":
			s.PStrike = asInt(value)
		case "f_1b_pos":
			s.F1BPOS = asInt(value)
		case "f_1b_g":
			s.F1BG = asInt(value)
		case "f_1b_gs":
			s.F1BGS = asInt(value)
		case "f_1b_out":
			s.F1BOUT = asInt(value)
		case "f_1b_tc":
			s.F1BTC = asInt(value)
		case "f_1b_po":
			s.F1BPO = asInt(value)
		case "f_1b_a":
			s.F1BA = asInt(value)
		case "f_1b_e":
			s.F1BE = asInt(value)
		case "f_1b_dp":
			s.F1BDP = asInt(value)
		case "f_1b_tp":
			s.F1BTP = asInt(value)
		case "f_2b_pos":
			s.F2BPOS = asInt(value)
		case "f_2b_g":
			s.F2BG = asInt(value)
		case "f_2b_gs":
			s.F2BGS = asInt(value)
		case "f_2b_out":
			s.F2BOUT = asInt(value)
		case "f_2b_tc":
			s.F2BTC = asInt(value)
		case "f_2b_po":
			s.F2BPO = asInt(value)
		case "f_2b_a":
			s.F2BA = asInt(value)
		case "f_2b_e":
			s.F2BE = asInt(value)
		case "f_2b_dp":
			s.F2BDP = asInt(value)
		case "f_2b_tp":
			s.F2BTP = asInt(value)
		case "f_3b_pos":
			s.F3BPOS = asInt(value)
		case "f_3b_g":
			s.F3BG = asInt(value)
		case "f_3b_gs":
			s.F3BGS = asInt(value)
		case "f_3b_out":
			s.F3BOUT = asInt(value)
		case "f_3b_tc":
			s.F3BTC = asInt(value)
		case "f_3b_po":
			s.F3BPO = asInt(value)
		case "f_3b_a":
			s.F3BA = asInt(value)
		case "f_3b_e":
			s.F3BE = asInt(value)
		case "f_3b_dp":
			s.F3BDP = asInt(value)
		case "f_3b_tp":
			s.F3BTP = asInt(value)
		case "f_ss_pos":
			s.FSSPOS = asInt(value)
		case "f_ss_g":
			s.FSSG = asInt(value)
		case "f_ss_gs":
			s.FSSGS = asInt(value)
		case "f_ss_out":
			s.FSSOUT = asInt(value)
		case "f_ss_tc":
			s.FSSTC = asInt(value)
		case "f_ss_po":
			s.FSSPO = asInt(value)
		case "f_ss_a":
			s.FSSA = asInt(value)
		case "f_ss_e":
			s.FSSE = asInt(value)
		case "f_ss_dp":
			s.FSSDP = asInt(value)
		case "f_ss_tp":
			s.FSSTP = asInt(value)
		case "f_of_pos":
			s.FOFPOS = asInt(value)
		case "f_of_g":
			s.FOFG = asInt(value)
		case "f_of_gs":
			s.FOFGS = asInt(value)
		case "f_of_out":
			s.FOFOUT = asInt(value)
		case "f_of_tc":
			s.FOFTC = asInt(value)
		case "f_of_po":
			s.FOFPO = asInt(value)
		case "f_of_a":
			s.FOFA = asInt(value)
		case "f_of_e":
			s.FOFE = asInt(value)
		case "f_of_dp":
			s.FOFDP = asInt(value)
		case "f_of_tp":
			s.FOFTP = asInt(value)
		case "f_lf_pos":
			s.FLFPOS = asInt(value)
		case "f_lf_g":
			s.FLFG = asInt(value)
		case "f_lf_gs":
			s.FLFGS = asInt(value)
		case "f_lf_out":
			s.FLFOUT = asInt(value)
		case "f_lf_tc":
			s.FLFTC = asInt(value)
		case "f_lf_po":
			s.FLFPO = asInt(value)
		case "f_lf_a":
			s.FLFA = asInt(value)
		case "f_lf_e":
			s.FLFE = asInt(value)
		case "f_lf_dp":
			s.FLFDP = asInt(value)
		case "f_lf_tp":
			s.FLFTP = asInt(value)
		case "f_cf_pos":
			s.FCFPOS = asInt(value)
		case "f_cf_g":
			s.FCFG = asInt(value)
		case "f_cf_gs":
			s.FCFGS = asInt(value)
		case "f_cf_out":
			s.FCFOUT = asInt(value)
		case "f_cf_tc":
			s.FCFTC = asInt(value)
		case "f_cf_po":
			s.FCFPO = asInt(value)
		case "f_cf_a":
			s.FCFA = asInt(value)
		case "f_cf_e":
			s.FCFE = asInt(value)
		case "f_cf_dp":
			s.FCFDP = asInt(value)
		case "f_cf_tp":
			s.FCFTP = asInt(value)
		case "f_rf_pos":
			s.FRFPOS = asInt(value)
		case "f_rf_g":
			s.FRFG = asInt(value)
		case "f_rf_gs":
			s.FRFGS = asInt(value)
		case "f_rf_out":
			s.FRFOUT = asInt(value)
		case "f_rf_tc":
			s.FRFTC = asInt(value)
		case "f_rf_po":
			s.FRFPO = asInt(value)
		case "f_rf_a":
			s.FRFA = asInt(value)
		case "f_rf_e":
			s.FRFE = asInt(value)
		case "f_rf_dp":
			s.FRFDP = asInt(value)
		case "f_rf_tp":
			s.FRFTP = asInt(value)
		case "f_c_pos":
			s.FCPOS = asInt(value)
		case "f_c_g":
			s.FCG = asInt(value)
		case "f_c_gs":
			s.FCGS = asInt(value)
		case "f_c_out":
			s.FCOUT = asInt(value)
		case "f_c_tc":
			s.FCTC = asInt(value)
		case "f_c_po":
			s.FCPO = asInt(value)
		case "f_c_a":
			s.FCA = asInt(value)
		case "f_c_e":
			s.FCE = asInt(value)
		case "f_c_dp":
			s.FCDP = asInt(value)
		case "f_c_tp":
			s.FCTP = asInt(value)
		case "f_c_pb":
			s.FCPB = asInt(value)
		case "f_c_xi":
			s.FCXI = asInt(value)
		case "f_p_pos":
			s.FPPOS = asInt(value)
		case "f_p_g":
			s.FPG = asInt(value)
		case "f_p_gs":
			s.FPGS = asInt(value)
		case "f_p_out":
			s.FPOUT = asInt(value)
		case "f_p_tc":
			s.FPTC = asInt(value)
		case "f_p_po":
			s.FPPO = asInt(value)
		case "f_p_a":
			s.FPA = asInt(value)
		case "f_p_e":
			s.FPE = asInt(value)
		case "f_p_dp":
			s.FPDP = asInt(value)
		case "f_p_tp":
			s.FPTP = asInt(value)
		default:
			return nil, fmt.Errorf("player game stats: unknown column %q", key)
		}
	}
	s.UID = s.uid()
	return s, nil
}

// uid is the composite game+person identifier. Unlike the hashed keys on the
// other tables it stays human-readable; the pair is unique upstream.
func (s *PlayerGameStats) uid() string {
	return fmt.Sprintf("%s_%s", s.GameKey, s.PersonKey)
}

// Values returns the row values aligned with PlayerGameStatsColumns
func (s *PlayerGameStats) Values() []any {
	return []any{
		s.UID,
		s.GameKey,
		s.GameSource,
		s.GameDate,
		s.GameNumber,
		s.AppearDate,
		s.SiteKey,
		s.SeasonPhase,
		s.TeamAlignment,
		s.TeamKey,
		s.OpponentKey,
		s.PersonKey,
		s.Slot,
		s.Seq,
		s.BG,
		s.BPA,
		s.BAB,
		s.BR,
		s.BH,
		s.BTB,
		s.B2B,
		s.B3B,
		s.BHR,
		s.BHR4,
		s.BRBI,
		s.BGW,
		s.BBB,
		s.BIBB,
		s.BSO,
		s.BGDP,
		s.BHP,
		s.BSH,
		s.BSF,
		s.BSB,
		s.BCS,
		s.BXI,
		s.BGDH,
		s.BGPH,
		s.BGPR,
		s.PG,
		s.PGS,
		s.PCG,
		s.PSHO,
		s.PGF,
		s.PW,
		s.PL,
		s.PSV,
		s.POUT,
		s.PTBF,
		s.PAB,
		s.PR,
		s.PER,
		s.PH,
		s.PTB,
		s.P2B,
		s.P3B,
		s.PHR,
		s.PHR4,
		s.PBB,
		s.PIBB,
		s.PSO,
		s.PGDP,
		s.PHP,
		s.PSH,
		s.PSF,
		s.PXI,
		s.PWP,
		s.PBK,
		s.PIR,
		s.PIRS,
		s.PGO,
		s.PAO,
		s.PPitch,
		s.PStrike,
		s.F1BPOS,
		s.F1BG,
		s.F1BGS,
		s.F1BOUT,
		s.F1BTC,
		s.F1BPO,
		s.F1BA,
		s.F1BE,
		s.F1BDP,
		s.F1BTP,
		s.F2BPOS,
		s.F2BG,
		s.F2BGS,
		s.F2BOUT,
		s.F2BTC,
		s.F2BPO,
		s.F2BA,
		s.F2BE,
		s.F2BDP,
		s.F2BTP,
		s.F3BPOS,
		s.F3BG,
		s.F3BGS,
		s.F3BOUT,
		s.F3BTC,
		s.F3BPO,
		s.F3BA,
		s.F3BE,
		s.F3BDP,
		s.F3BTP,
		s.FSSPOS,
		s.FSSG,
		s.FSSGS,
		s.FSSOUT,
		s.FSSTC,
		s.FSSPO,
		s.FSSA,
		s.FSSE,
		s.FSSDP,
		s.FSSTP,
		s.FOFPOS,
		s.FOFG,
		s.FOFGS,
		s.FOFOUT,
		s.FOFTC,
		s.FOFPO,
		s.FOFA,
		s.FOFE,
		s.FOFDP,
		s.FOFTP,
		s.FLFPOS,
		s.FLFG,
		s.FLFGS,
		s.FLFOUT,
		s.FLFTC,
		s.FLFPO,
		s.FLFA,
		s.FLFE,
		s.FLFDP,
		s.FLFTP,
		s.FCFPOS,
		s.FCFG,
		s.FCFGS,
		s.FCFOUT,
		s.FCFTC,
		s.FCFPO,
		s.FCFA,
		s.FCFE,
		s.FCFDP,
		s.FCFTP,
		s.FRFPOS,
		s.FRFG,
		s.FRFGS,
		s.FRFOUT,
		s.FRFTC,
		s.FRFPO,
		s.FRFA,
		s.FRFE,
		s.FRFDP,
		s.FRFTP,
		s.FCPOS,
		s.FCG,
		s.FCGS,
		s.FCOUT,
		s.FCTC,
		s.FCPO,
		s.FCA,
		s.FCE,
		s.FCDP,
		s.FCTP,
		s.FCPB,
		s.FCXI,
		s.FPPOS,
		s.FPG,
		s.FPGS,
		s.FPOUT,
		s.FPTC,
		s.FPPO,
		s.FPA,
		s.FPE,
		s.FPDP,
		s.FPTP,
	}
}
