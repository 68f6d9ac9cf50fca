package usecase

import (
	"FinScan/pkg/util"
)

// niftyUniverse is the curated liquid NSE list, grouped by sector.
// TATAPOWER.NS is listed under two sectors.
var niftyUniverse = []string{
	// Large Cap / Nifty 50
	"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "BHARTIARTL.NS", "ICICIBANK.NS",
	"INFY.NS", "SBIN.NS", "ITC.NS", "HINDUNILVR.NS", "LT.NS",
	"KOTAKBANK.NS", "AXISBANK.NS", "MARUTI.NS", "WIPRO.NS", "SUNPHARMA.NS",
	"ULTRACEMCO.NS", "TITAN.NS", "BAJFINANCE.NS", "ASIANPAINT.NS", "TATAMOTORS.NS",
	"HCLTECH.NS", "TECHM.NS", "INDUSINDBK.NS", "ADANIPORTS.NS", "NTPC.NS",
	"POWERGRID.NS", "COALINDIA.NS", "ONGC.NS", "BPCL.NS", "TATASTEEL.NS",
	"HINDALCO.NS", "DRREDDY.NS", "CIPLA.NS", "JSWSTEEL.NS", "EICHERMOT.NS",
	"HEROMOTOCO.NS", "BRITANNIA.NS", "NESTLEIND.NS", "TATACONSUM.NS", "ZOMATO.NS",
	"BEL.NS", "TATAPOWER.NS", "BAJAJ-AUTO.NS", "SHRIRAMFIN.NS",
	// IT / Tech
	"LTIM.NS", "PERSISTENT.NS", "COFORGE.NS", "MPHASIS.NS", "TATAELXSI.NS",
	"KPITTECH.NS", "OFSS.NS", "CYIENT.NS", "LATENTVIEW.NS", "BIRLASOFT.NS",
	// Banking / NBFC
	"BANKBARODA.NS", "PNB.NS", "FEDERALBNK.NS", "IDFCFIRSTB.NS",
	"CHOLAFIN.NS", "RECLTD.NS", "PFC.NS", "IRFC.NS", "MUTHOOTFIN.NS", "SBICARD.NS",
	"HDFCAMC.NS", "ICICIGI.NS", "SBILIFE.NS", "HDFCLIFE.NS",
	// Pharma
	"LUPIN.NS", "BIOCON.NS", "ALKEM.NS", "TORNTPHARM.NS", "AUROPHARMA.NS",
	"DIVISLAB.NS", "ABBOTINDIA.NS", "GLENMARK.NS", "LAURUSLABS.NS", "AJANTPHARM.NS",
	// FMCG
	"GODREJCP.NS", "DABUR.NS", "MARICO.NS", "COLPAL.NS", "EMAMILTD.NS", "VBL.NS",
	// Auto
	"MRF.NS", "BALKRISIND.NS", "APOLLOTYRE.NS", "MOTHERSON.NS", "BOSCHLTD.NS",
	"BHARATFORG.NS", "TVSMOTOR.NS",
	// Capital Goods
	"SIEMENS.NS", "ABB.NS", "HAVELLS.NS", "CUMMINSIND.NS", "THERMAX.NS",
	"BHEL.NS", "VOLTAS.NS", "DIXON.NS", "POLYCAB.NS", "KEI.NS",
	// Cement / Real Estate
	"JKCEMENT.NS", "RAMCOCEM.NS", "DLF.NS", "GODREJPROP.NS", "PRESTIGE.NS",
	// Energy
	"GAIL.NS", "IGL.NS", "PETRONET.NS", "ADANIGREEN.NS", "TATAPOWER.NS", "NHPC.NS",
	// Chemicals
	"PIIND.NS", "DEEPAKNTR.NS", "SRF.NS", "NAVINFLUOR.NS", "AARTI.NS",
	// Metals
	"SAIL.NS", "VEDL.NS", "HINDZINC.NS", "APLAPOLLO.NS",
	// Infrastructure
	"IRCTC.NS", "CONCOR.NS", "GMRINFRA.NS", "IRB.NS", "DELHIVERY.NS",
	// Consumer Tech
	"NAUKRI.NS", "DMART.NS", "PAYTM.NS", "POLICYBZR.NS",
	// Paints / Lifestyle
	"BERGEPAINT.NS", "ASTRAL.NS", "PIDILITIND.NS", "KALYANKJIL.NS",
}

// Universe is the ordered symbol list every plan slices from.
type Universe []string

// DefaultUniverse returns the deduplicated default universe in listing order.
func DefaultUniverse() Universe {
	return Universe(util.Dedup(niftyUniverse))
}

// NewUniverse dedups override, falling back to the default list when empty.
func NewUniverse(override []string) Universe {
	if len(override) == 0 {
		return DefaultUniverse()
	}
	return Universe(util.Dedup(override))
}

// Head returns the first n symbols, or all of them when n <= 0.
func (u Universe) Head(n int) []string {
	if n <= 0 || n >= len(u) {
		return u
	}
	return u[:n]
}
