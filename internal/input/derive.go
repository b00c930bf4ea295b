package input

// Cross-derivation tables. When a button has no raw mapping its state
// comes from the paired axis direction; when an axis has no raw
// mapping its value comes from the paired button states. The two
// tables are inverses of each other; trigger axes have no negative
// button.

type axisDirection struct {
	axis Axis
	sign float64
}

var buttonAxis = map[Button]axisDirection{
	ButtonDPadUp:          {AxisDPadY, 1},
	ButtonDPadDown:        {AxisDPadY, -1},
	ButtonDPadLeft:        {AxisDPadX, -1},
	ButtonDPadRight:       {AxisDPadX, 1},
	ButtonLeftTrigger:     {AxisLeftTrigger, 1},
	ButtonRightTrigger:    {AxisRightTrigger, 1},
	ButtonLeftStickUp:     {AxisLeftY, 1},
	ButtonLeftStickDown:   {AxisLeftY, -1},
	ButtonLeftStickLeft:   {AxisLeftX, -1},
	ButtonLeftStickRight:  {AxisLeftX, 1},
	ButtonRightStickUp:    {AxisRightY, 1},
	ButtonRightStickDown:  {AxisRightY, -1},
	ButtonRightStickLeft:  {AxisRightX, -1},
	ButtonRightStickRight: {AxisRightX, 1},
}

type directionButtons struct {
	negative Button
	positive Button
}

var axisButtons = [numAxes]directionButtons{
	AxisLeftX:        {ButtonLeftStickLeft, ButtonLeftStickRight},
	AxisLeftY:        {ButtonLeftStickDown, ButtonLeftStickUp},
	AxisRightX:       {ButtonRightStickLeft, ButtonRightStickRight},
	AxisRightY:       {ButtonRightStickDown, ButtonRightStickUp},
	AxisDPadX:        {ButtonDPadLeft, ButtonDPadRight},
	AxisDPadY:        {ButtonDPadDown, ButtonDPadUp},
	AxisLeftTrigger:  {buttonNone, ButtonLeftTrigger},
	AxisRightTrigger: {buttonNone, ButtonRightTrigger},
}
