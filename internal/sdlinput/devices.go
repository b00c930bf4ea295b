package sdlinput

import "github.com/soar/padmap/internal/input"

// Known vendor/product IDs.
type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

var knownDevices = map[deviceKey]input.DeviceType{
	// Microsoft Xbox controllers
	{0x045E, 0x028E}: input.DeviceXbox360,
	{0x045E, 0x02FF}: input.DeviceXboxOne,
	{0x045E, 0x0B12}: input.DeviceXboxSeries,
	{0x045E, 0x0B13}: input.DeviceXboxSeries, // wireless
	// Sony PlayStation controllers
	{0x054C, 0x0268}: input.DeviceDualShock3,
	{0x054C, 0x05C4}: input.DeviceDualShock4, // v1
	{0x054C, 0x09CC}: input.DeviceDualShock4, // v2
	{0x054C, 0x0CE6}: input.DeviceDualSense,
	// Nintendo
	{0x057E, 0x2009}: input.DeviceSwitchPro,
	{0x057E, 0x200E}: input.DeviceJoyConPair,
	// Valve Steam Controller
	{0x28DE, 0x1102}: input.DeviceSteamController,
	{0x28DE, 0x1142}: input.DeviceSteamController, // wireless dongle
	// Google Stadia controller
	{0x18D1, 0x9400}: input.DeviceStadia,
	// 8BitDo (most models share the X-input PID)
	{0x2DC8, 0x6003}: input.DeviceEightBitDo,
	{0x2DC8, 0x3106}: input.DeviceEightBitDo,
}

// identify resolves a vendor/product pair to a device type, falling
// back to the generic mapping family.
func identify(vendorID, productID uint16) input.DeviceType {
	if t, ok := knownDevices[deviceKey{VendorID: vendorID, ProductID: productID}]; ok {
		return t
	}
	return input.DeviceGeneric
}
