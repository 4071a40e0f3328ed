//go:build tinygo

package efm32rtc

// EnableLFXO starts the 32.768 kHz crystal oscillator and spins until it
// reports ready. The ULFRCO needs no enable; it is always running.
func EnableLFXO() {
	cmuOSCENCMD.Set(oscencmdLFXOEN)
	for cmuSTATUS.Get()&statusLFXORDY == 0 {
	}
}

// RouteLFAToLFXO selects the crystal as the low-frequency A clock source.
func RouteLFAToLFXO() {
	v := cmuLFCLKSEL.Get()
	v &^= lfclkselLFAE
	v = (v &^ lfclkselLFAMask) | lfclkselLFALFXO
	cmuLFCLKSEL.Set(v)
}

// RouteLFAToULFRCO selects the internal 1 kHz RC as the low-frequency A
// clock source (LFA field cleared, extended-select bit set).
func RouteLFAToULFRCO() {
	v := cmuLFCLKSEL.Get()
	v &^= lfclkselLFAMask
	v |= lfclkselLFAE
	cmuLFCLKSEL.Set(v)
}

// EnableLEClock gates the clock to the low-energy module interface.
func EnableLEClock(on bool) {
	if on {
		cmuHFCORECLKEN0.SetBits(hfcoreclkLE)
	} else {
		cmuHFCORECLKEN0.ClearBits(hfcoreclkLE)
	}
}

// EnableRTCClock gates the RTC peripheral clock.
func EnableRTCClock(on bool) {
	if on {
		cmuLFACLKEN0.SetBits(lfaclkRTC)
	} else {
		cmuLFACLKEN0.ClearBits(lfaclkRTC)
	}
}
