package render

// Pond palette
var (
	RgbWater      = RGB{14, 28, 38}
	RgbWaterDeep  = RGB{6, 12, 18}
	RgbCellBare   = RGB{70, 96, 90}
	RgbCellRipe   = RGB{120, 220, 110}
	RgbCellMucky  = RGB{150, 110, 40}
	RgbMuckBg     = RGB{48, 34, 14}
	RgbLanding    = RGB{230, 230, 160}
	RgbForager    = RGB{255, 200, 90}
	RgbFeeder     = RGB{90, 170, 230}
	RgbFeederHalo = RGB{30, 70, 110}
	RgbSeedGlow   = RGB{150, 255, 200}

	RgbHUDText    = RGB{200, 200, 200}
	RgbHUDBg      = RGB{26, 27, 38}
	RgbHUDRound   = RGB{135, 206, 250}
	RgbHUDAlert   = RGB{255, 120, 120}
	RgbHUDPaused  = RGB{255, 165, 0}
	RgbOverlayTxt = RGB{240, 240, 255}
)
