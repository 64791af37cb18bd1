package channel

var tntDirectory = NewDirectory(tntChannels)

// TNT returns the directory of the 25 main French TNT channels, in
// broadcast-number order. The variant lists come from labels actually seen
// in public playlists; a label not enumerated here is not recognized.
func TNT() *Directory {
	return tntDirectory
}

var tntChannels = []DirectoryChannel{
	{Name: "TF1", Variants: []string{
		"TF1",
		"TF1 HD",
		"TF1 FHD",
		"TF1 HD FR",
		"TF1 FR",
		"TF1 [FR]",
		"1. TF1 [FR]",
		"TF1_",
		"TF1-",
		"TF1 (backup SD)",
		"TF1 (720p) [Geo-blocked]",
		"TF1 HD (720p)",
		"1693. TF1 HD [FR]",
		"TF1 HD [FR]",
	}},
	{Name: "France 2", Variants: []string{
		"France 2",
		"FRANCE 2",
		"France2",
		"FRANCE2",
		"France 2 HD",
		"FRANCE 2 HD",
		"France-2",
		"FRANCE-2",
		"france-2-highest",
	}},
	{Name: "France 3", Variants: []string{
		"France 3",
		"FRANCE 3",
		"France3",
		"FRANCE3",
		"France 3 HD",
		"FRANCE 3 HD",
		"3. France 3 [1080p-france.tv]",
		"49. France 3 [SSAI][1080p-france.tv]",
		"France 3 [1080p-france.tv]",
		"France 3 [SSAI][1080p-france.tv]",
	}},
	{Name: "France 4", Variants: []string{
		"France 4",
		"FRANCE 4",
		"France4",
		"FRANCE4",
		"France 4 HD",
		"FRANCE 4 HD",
		"112. FRANCE 4 [1080p-france.tv]",
		"FRANCE 4 [1080p-france.tv]",
	}},
	{Name: "France 5", Variants: []string{
		"France 5",
		"FRANCE 5",
		"France5",
		"FRANCE5",
		"France 5 HD",
		"FRANCE 5 HD",
		"5. France 5 [1080p-france.tv]",
		"France 5 [1080p-france.tv]",
	}},
	{Name: "M6", Variants: []string{
		"M6",
		"M6 HD",
		"M6 FHD",
		"M6 HD FR",
		"M6 FR",
		"M6 [Geo-blocked]",
		"M6 CH/SWISS",
		"M6 [drm-keycrypted]",
	}},
	{Name: "Arte", Variants: []string{
		"Arte",
		"ARTE",
		"Arte HD",
		"ARTE HD",
		"Arte FR",
		"ARTE FR",
		"7. Arte [720p-arte.tv]",
		"46. ARTE [1080p-tf1.fr]",
		"47. Arte [1080p-france.tv]",
		"Arte [720p-arte.tv]",
		"ARTE [1080p-tf1.fr]",
		"Arte [1080p-france.tv]",
	}},
	{Name: "La Chaîne parlementaire", Variants: []string{
		"La Chaîne parlementaire",
		"LCP",
		"LCP-AN",
		"LCP Assemblée nationale",
		"LCP-AN FR",
		"1682. LCP [FR]",
		"8. LCP [1080p-france.tv]",
		"51. LCP-AN [1080p-dailymotion.com]",
		"LCP [1080p-france.tv]",
		"LCP-AN [1080p-dailymotion.com]",
	}},
	{Name: "W9", Variants: []string{
		"W9",
		"W9 HD",
		"W9 FHD",
		"W9 HD FR",
		"W9 FR",
		"9. W9 [720p-tf1.fr]",
		"W9 [720p-tf1.fr]",
		"1701. W9 [FR]",
		"W9 [FR]",
	}},
	{Name: "TMC", Variants: []string{
		"TMC",
		"TMC HD",
		"TMC FHD",
		"TMC HD FR",
		"TMC FR",
		"10. TMC [720p-tf1.fr]",
		"TMC [720p-tf1.fr]",
	}},
	{Name: "TFX", Variants: []string{
		"TFX",
		"TFX HD",
		"TFX FHD",
		"TFX HD FR",
		"TFX FR",
		"TFX [FR]",
		"TFX Séries Films",
		"TFX Séries Films [FR]",
		"11. TFX [720p-tf1.fr]",
		"1695. TFX [FR]",
	}},
	{Name: "Gulli", Variants: []string{
		"Gulli",
		"GULLI",
		"Gulli HD",
		"GULLI HD",
		"Gulli FR",
		"GULLI FR",
	}},
	{Name: "BFM TV", Variants: []string{
		"BFM TV",
		"BFM",
		"BFM TV HD",
		"BFM HD",
		"BFM TV FR",
		"BFM FR",
		"1659. BFM TV [FR]",
		"13. BFM TV [1080p-rmcbfmplay.com]",
		"BFM TV [1080p-rmcbfmplay.com]",
		"1000. BFM TV [1080p-samsungtvplus]",
		"BFM TV [1080p-samsungtvplus]",
	}},
	{Name: "CNEWS", Variants: []string{
		"CNEWS",
		"CNews",
		"CNEWS HD",
		"CNews HD",
		"CNEWS FR",
		"CNews FR",
		"14. CNEWS [720p-tf1.fr]",
		"CNEWS [720p-tf1.fr]",
		"14. C NEWS [1080p-canalplus.com]",
		"C NEWS [1080p-canalplus.com]",
	}},
	{Name: "LCI", Variants: []string{
		"LCI",
		"LCI HD",
		"LCI FHD",
		"LCI HD FR",
		"LCI FR",
	}},
	{Name: "Franceinfo", Variants: []string{
		"Franceinfo",
		"France Info",
		"FRANCEINFO",
		"France Info TV",
		"France Info FR",
		"FRANCEINFO FR",
		"FRANCE INFO",
		"FRANCE INFO [FR]",
		"1677. FRANCE INFO [FR]",
	}},
	{Name: "CSTAR", Variants: []string{
		"CSTAR",
		"CStar",
		"CSTAR HD",
		"CStar HD",
		"CSTAR FR",
		"CStar FR",
		"17. CStar [1080p-dailymotion.com]",
		"CStar [1080p-dailymotion.com]",
	}},
	{Name: "T18", Variants: []string{
		"T18",
		"T18 HD",
		"T18 HD FR",
		"T18 FR",
	}},
	{Name: "NOVO19", Variants: []string{
		"NOVO19",
		"NOVO",
		"NOVO 19",
		"NOVO19 HD",
		"NOVO19 FR",
		"NOVO FR",
		"19. NOVO [720p-tf1.fr]",
		"NOVO [720p-tf1.fr]",
	}},
	{Name: "TF1 Séries Films", Variants: []string{
		"TF1 Séries Films",
		"TF1 Séries",
		"TF1 Series Films",
		"TF1 Series",
		"TF1 Séries Films FR",
		"TF1 Séries FR",
		"TF1 Séries Films [FR]",
		"TF1 Séries [FR]",
		"20. TF1 Séries Films [720p-tf1.fr]",
	}},
	{Name: "L'Équipe", Variants: []string{
		"L'Équipe",
		"L'ÉQUIPE",
		"L'Equipe",
		"L'Équipe TV",
		"L'Équipe 21",
		"L'Équipe FR",
		"L'ÉQUIPE FR",
		"21. LA CHAÎNE L'ÉQUIPE [1080p-dailymotion.com]",
		"LA CHAÎNE L'ÉQUIPE [1080p-dailymotion.com]",
	}},
	{Name: "6Ter", Variants: []string{
		"6Ter",
		"6TER",
		"6Ter HD",
		"6TER HD",
		"6Ter FR",
		"6TER FR",
		"6ter (1080p) [Geo-blocked]",
		"6TER [drm-keycrypted]",
		"1656. 6TER [FR]",
	}},
	{Name: "RMC Story", Variants: []string{
		"RMC Story",
		"RMC STORY",
		"RMC Story HD",
		"RMC Story FR",
		"RMC STORY FR",
		"RMC Story [FR]",
		"RMC STORY [FR]",
		"1689. RMC STORY [FR]",
		"1065. RMC Story [1080p-samsungtvplus]",
		"RMC Story [1080p-samsungtvplus]",
	}},
	{Name: "RMC Découverte", Variants: []string{
		"RMC Découverte",
		"RMC DÉCOUVERTE",
		"RMC Decouverte",
		"RMC Découverte HD",
		"RMC Découverte FR",
		"RMC DÉCOUVERTE FR",
		"RMC Découverte [FR]",
		"RMC DÉCOUVERTE [FR]",
		"1066. RMC Découverte [1080p-samsungtvplus]",
	}},
	{Name: "Chérie 25", Variants: []string{
		"Chérie 25",
		"CHÉRIE 25",
		"Cherie 25",
		"Chérie 25 HD",
		"Chérie 25 FR",
		"CHÉRIE 25 FR",
	}},
}
