// Package navigation implements the floating tab bar controller.
//
// The controller owns a fixed, ordered set of destinations and the animation
// state that goes with them: a per-item press sequence, a bounce of the whole
// bar on every press, and a continuous idle float. It is frame driven and has
// no rendering or timer dependencies of its own. The host calls Update with the
// current frame time, feeds taps in with Press stamped with the time they
// happened, and reads back a Frame from Render to draw.
//
// # Basic Usage
//
//	items := []navigation.Item{
//	    {Label: "nav_home", Icon: "home", Route: "/(tabs)/home"},
//	    {Label: "nav_plans", Icon: "cellular", Route: "/(tabs)/plans"},
//	    {Label: "nav_settings", Icon: "settings", Route: "/(tabs)/settings"},
//	}
//
//	c, err := navigation.NewController(items, navigation.NavigatorFunc(func(r navigation.RouteID) {
//	    // hand the route to the router
//	}), navigation.Options{Haptics: rumble})
//	if err != nil {
//	    return err
//	}
//	c.Start(time.Now())
//	defer c.Close()
//
//	for running {
//	    c.Update(time.Now())
//	    // translate input into c.Press(index, time.Now())
//	    frame := c.Render(currentRoute)
//	    // draw frame.Bar and frame.Buttons
//	}
//
// # Overlapping Presses
//
// Navigation is scheduled NavigateDelay after a press so the press animation is
// visible before the screen changes. A second press before that delay elapses
// cancels the first navigation and schedules its own: exactly one Navigate call
// is made, for the most recently pressed item. Animations of different items
// are independent; pressing an item restarts only that item's sequence.
package navigation
