package domain

// TrackedSymbols is the USDT-perpetual universe the engine follows. Windows
// and statistics are pre-created for every entry at startup; trades for
// anything else are dropped at the feed boundary.
var TrackedSymbols = []string{
	"BTCUSDT", "ETHUSDT", "BCHUSDT", "XRPUSDT", "EOSUSDT", "LTCUSDT",
	"TRXUSDT", "ETCUSDT", "LINKUSDT", "XLMUSDT", "ADAUSDT", "XMRUSDT",
	"DASHUSDT", "ZECUSDT", "XTZUSDT", "BNBUSDT", "ATOMUSDT", "ONTUSDT",
	"IOTAUSDT", "BATUSDT", "VETUSDT", "NEOUSDT", "QTUMUSDT", "IOSTUSDT",
	"THETAUSDT", "ALGOUSDT", "ZILUSDT", "KNCUSDT", "ZRXUSDT", "COMPUSDT",
	"OMGUSDT", "DOGEUSDT", "SXPUSDT", "KAVAUSDT", "BANDUSDT", "RLCUSDT",
	"WAVESUSDT", "MKRUSDT", "SNXUSDT", "DOTUSDT", "DEFIUSDT", "YFIUSDT",
	"BALUSDT", "CRVUSDT", "TRBUSDT", "RUNEUSDT", "SUSHIUSDT", "SRMUSDT",
	"EGLDUSDT", "SOLUSDT", "ICXUSDT", "STORJUSDT", "BLZUSDT", "UNIUSDT",
	"AVAXUSDT", "FTMUSDT", "HNTUSDT", "ENJUSDT", "FLMUSDT", "TOMOUSDT",
	"RENUSDT", "KSMUSDT", "NEARUSDT", "AAVEUSDT", "FILUSDT", "RSRUSDT",
	"LRCUSDT", "MATICUSDT", "OCEANUSDT", "CVCUSDT", "BELUSDT", "CTKUSDT",
	"AXSUSDT", "ALPHAUSDT", "ZENUSDT", "SKLUSDT", "GRTUSDT", "1INCHUSDT",
	"CHZUSDT", "SANDUSDT", "ANKRUSDT", "BTSUSDT", "LITUSDT", "UNFIUSDT",
	"REEFUSDT", "RVNUSDT", "SFPUSDT", "XEMUSDT", "BTCSTUSDT", "COTIUSDT",
	"CHRUSDT", "MANAUSDT", "ALICEUSDT", "HBARUSDT", "ONEUSDT", "LINAUSDT",
	"STMXUSDT", "DENTUSDT", "CELRUSDT", "HOTUSDT", "MTLUSDT", "OGNUSDT",
	"NKNUSDT", "SCUSDT", "DGBUSDT", "1000SHIBUSDT", "BAKEUSDT", "GTCUSDT",
	"BTCDOMUSDT", "IOTXUSDT", "AUDIOUSDT", "RAYUSDT", "C98USDT", "MASKUSDT",
	"ATAUSDT", "DYDXUSDT", "1000XECUSDT", "GALAUSDT", "CELOUSDT", "ARUSDT",
	"KLAYUSDT", "ARPAUSDT", "CTSIUSDT", "LPTUSDT", "ENSUSDT", "PEOPLEUSDT",
	"ANTUSDT", "ROSEUSDT", "DUSKUSDT", "FLOWUSDT", "IMXUSDT", "API3USDT",
	"GMTUSDT", "APEUSDT", "WOOUSDT", "FTTUSDT", "JASMYUSDT", "DARUSDT",
	"GALUSDT", "OPUSDT", "INJUSDT", "STGUSDT", "FOOTBALLUSDT", "SPELLUSDT",
	"1000LUNCUSDT", "LUNA2USDT", "LDOUSDT", "CVXUSDT", "ICPUSDT", "APTUSDT",
	"QNTUSDT", "BLUEBIRDUSDT", "FETUSDT", "FXSUSDT", "HOOKUSDT", "MAGICUSDT",
	"TUSDT", "RNDRUSDT", "HIGHUSDT", "MINAUSDT", "ASTRUSDT", "AGIXUSDT",
	"PHBUSDT", "GMXUSDT", "CFXUSDT", "STXUSDT", "COCOSUSDT", "BNXUSDT",
	"ACHUSDT", "SSVUSDT", "CKBUSDT", "PERPUSDT", "TRUUSDT", "LQTYUSDT",
	"USDCUSDT", "IDUSDT", "ARBUSDT", "JOEUSDT", "TLMUSDT", "AMBUSDT",
	"LEVERUSDT", "RDNTUSDT", "HFTUSDT", "XVSUSDT", "BLURUSDT", "EDUUSDT",
	"IDEXUSDT", "SUIUSDT", "1000PEPEUSDT", "1000FLOKIUSDT", "UMAUSDT", "RADUSDT",
	"KEYUSDT", "COMBOUSDT", "NMRUSDT", "MAVUSDT", "MDTUSDT", "XVGUSDT",
	"WLDUSDT", "PENDLEUSDT", "ARKMUSDT", "AGLDUSDT", "YGGUSDT", "DODOXUSDT",
	"BNTUSDT", "OXTUSDT", "SEIUSDT", "CYBERUSDT", "HIFIUSDT", "ARKUSDT",
	"FRONTUSDT", "GLMRUSDT", "BICOUSDT",
}

// trackedSet is built once for O(1) membership checks on the hot path.
var trackedSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(TrackedSymbols))
	for _, s := range TrackedSymbols {
		set[s] = struct{}{}
	}
	return set
}()

// IsTracked reports whether the symbol belongs to the tracked universe.
func IsTracked(symbol string) bool {
	_, ok := trackedSet[symbol]
	return ok
}
