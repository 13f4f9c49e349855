package screener

import "strings"

// jkSuffix is the Yahoo Finance suffix for IDX-listed tickers.
const jkSuffix = ".JK"

// NormalizeTicker upper-cases a ticker and ensures the IDX suffix.
func NormalizeTicker(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return ""
	}
	if !strings.HasSuffix(t, jkSuffix) {
		t += jkSuffix
	}
	return t
}

// PlainTicker strips the IDX suffix for presentation.
func PlainTicker(ticker string) string {
	return strings.TrimSuffix(strings.ToUpper(ticker), jkSuffix)
}

// SyariahList holds the manually curated sharia-compliant tickers.
var SyariahList = []string{
	"ACES", "ADRO", "AKRA", "ANTM", "ASII", "ASRI", "AUTO", "BBHI", "BRIS",
	"BRMS", "BRPT", "BSDE", "BTPS", "BUMI", "CPIN", "CTRA", "CUAN", "DEWA",
	"DOID", "ELSA", "EMTK", "ENRG", "ERAA", "EXCL", "GOTO", "HRUM", "HATM",
	"HEAL", "ICBP", "INCO", "INDF", "INKP", "INTP", "ISAT", "ITMG",
	"JPFA", "JRPT", "JSMR", "KLBF", "MAPI", "MBMA", "MDKA", "MEDC", "MIKA",
	"MNCN", "MTEL", "MYOR", "NCKL", "PGAS", "PGEO", "PTBA", "PTPP", "PWON",
	"RALS", "SCMA", "SIDO", "SMGR", "SMRA", "SRTG", "TAPG", "TBIG", "TINS",
	"TKIM", "TLKM", "TOWR", "TPIA", "UNTR", "UNVR", "WIKA", "WOOD", "AMMN",
	"BREN", "PANI", "AMRT", "AVIA", "CMRY", "MAPA", "BELI", "HILL", "BBRI",
}

// MarketUniverse is the scanner's default pool of liquid IDX names.
var MarketUniverse = []string{
	"BBRI", "BBCA", "BMRI", "BBNI", "TLKM", "ASII", "UNTR", "ICBP", "INDF", "GOTO",
	"ARTO", "BUKA", "EMTK", "MDKA", "ANTM", "INCO", "PGAS", "ADRO", "PTBA", "ITMG",
	"UNVR", "HMSP", "GGRM", "CPIN", "JPFA", "KLBF", "SMGR", "INTP", "BRPT",
	"TPIA", "BREN", "AMMN", "CUAN", "DEWA", "BUMI", "BRMS", "PSAB", "MEDC", "AKRA",
	"EXCL", "ISAT", "JSMR", "ACES", "MAPI", "PWON", "BSDE", "CTRA", "SMRA", "ASRI",
	"BRIS", "HRUM", "INKP", "TKIM", "PANI", "AMRT",
}

// DefaultWatchlist seeds a fresh watchlist store.
var DefaultWatchlist = []string{"BBRI", "BBCA", "GOTO", "ANTM", "BREN", "TLKM"}

var syariahSet = func() map[string]bool {
	set := make(map[string]bool, len(SyariahList))
	for _, t := range SyariahList {
		set[t] = true
	}
	return set
}()

// IsSyariah reports whether a plain ticker is on the sharia list.
func IsSyariah(ticker string) bool {
	return syariahSet[PlainTicker(ticker)]
}
