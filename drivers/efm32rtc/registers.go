//go:build tinygo

// Package efm32rtc is register-level access to the EFM32HG real-time
// counter, the clock-management unit paths it depends on, and the
// Cortex-M0+ system control registers used for tick generation and
// retention entry. The power service drives it through the platform
// bindings; nothing here owns policy.
package efm32rtc

import (
	"runtime/volatile"
	"unsafe"
)

func reg(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

const (
	rtcBase uintptr = 0x4008_0000
	cmuBase uintptr = 0x400C_8000
)

// RTC registers.
var (
	rtcCTRL  = reg(rtcBase + 0x000)
	rtcCNT   = reg(rtcBase + 0x004)
	rtcCOMP0 = reg(rtcBase + 0x008)
	rtcIF    = reg(rtcBase + 0x010)
	rtcIFS   = reg(rtcBase + 0x014)
	rtcIFC   = reg(rtcBase + 0x018)
	rtcIEN   = reg(rtcBase + 0x01C)
)

const (
	rtcCtrlEN   = 1 << 0
	rtcIntCOMP0 = 1 << 1

	// CompareMask bounds the 24-bit COMP0/CNT fields.
	CompareMask = 0x00FF_FFFF
)

// CMU registers.
var (
	cmuOSCENCMD     = reg(cmuBase + 0x020)
	cmuLFCLKSEL     = reg(cmuBase + 0x028)
	cmuSTATUS       = reg(cmuBase + 0x02C)
	cmuHFCORECLKEN0 = reg(cmuBase + 0x040)
	cmuLFACLKEN0    = reg(cmuBase + 0x058)
)

const (
	oscencmdLFXOEN  = 1 << 8
	statusLFXORDY   = 1 << 9
	hfcoreclkLE     = 1 << 2
	lfaclkRTC       = 1 << 0
	lfclkselLFAMask = 0x3
	lfclkselLFALFXO = 0x2
	lfclkselLFAE    = 1 << 16 // LFA extended: ULFRCO when LFA field is 0
)

// Cortex-M0+ system registers: SysTick, NVIC, system control.
var (
	systCSR  = reg(0xE000_E010)
	systRVR  = reg(0xE000_E014)
	systCVR  = reg(0xE000_E018)
	nvicISER = reg(0xE000_E100)
	nvicICPR = reg(0xE000_E280)
	scbSCR   = reg(0xE000_ED10)
)

const (
	systCsrENABLE    = 1 << 0
	systCsrTICKINT   = 1 << 1
	systCsrCLKSOURCE = 1 << 2
	systReloadMask   = 0x00FF_FFFF

	scrSLEEPDEEP = 1 << 2

	rtcIRQn = 12
)
