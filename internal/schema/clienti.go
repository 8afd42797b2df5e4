package schema

// clienti is built once at startup. A misconfigured layout is a programming
// error, so construction failure panics instead of returning an error.
var clienti = mustBuild()

// Clienti returns the shared Cliente record layout: 44 fields covering 1,698
// characters, per the TracciatoRecordClienti layout.
func Clienti() *Schema {
	return clienti
}

func mustBuild() *Schema {
	s, err := New(clientiFields(), DefaultBoolCodes())
	if err != nil {
		panic("schema: invalid Cliente layout: " + err.Error())
	}
	return s
}

func clientiFields() []fieldSpec {
	return []fieldSpec{
		{"progressivo", 8, Integer},
		{"codice", 6, Text},
		{"ragione_sociale", 80, Text},
		{"cognome", 20, Text},
		{"nome", 20, Text},
		{"indirizzo", 40, Text},
		{"citta", 40, Text},
		{"prov", 3, Text},
		{"telefono", 20, Text},
		{"telefono2", 20, Text},
		{"email", 255, Text},
		{"codice_fiscale", 16, Text},
		{"parole_chiave", 8, Integer},
		{"partita_iva", 16, Text},
		{"bonus", 12, Integer},
		{"libero", 2, Boolean},
		{"cap", 5, Text},
		{"note", 255, Integer},
		{"codice_cosmo", 6, Text},
		{"banca_cosmo", 6, Text},
		{"spedizione", 30, Text},
		{"pagamento_cosmo", 6, Text},
		{"chiuso", 2, Boolean},
		{"codice_sponsor", 6, Text},
		{"sponsor", 2, Boolean},
		{"saldo_sponsor", 12, Integer},
		{"codice_doc", 8, Integer},
		{"stato", 40, Text},
		{"scadenza_bonus", 8, Date},
		{"trasferito_promo", 2, Boolean},
		{"titolo", 20, Text},
		{"copiaoffertada", 2, Boolean},
		{"codicepromo", 6, Text},
		{"promozionale", 2, Boolean},
		{"sitointernet", 255, Integer},
		{"indirizzofiscale", 40, Text},
		{"cittafiscale", 40, Text},
		{"provfiscale", 3, Text},
		{"capfiscale", 5, Text},
		{"nominativofiscale", 80, Text},
		{"edificio", 20, Text},
		{"id", 8, Integer},
		{"idadvplan", 8, Integer},
		{"varie", 255, Text},
	}
}
