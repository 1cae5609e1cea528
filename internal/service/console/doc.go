// Package console implements the interactive command surface of the alarm
// clock.
//
// It owns everything the core deliberately does not: parsing raw user input
// into times and weekdays, rendering alarm state and errors, and printing the
// trigger notification when the background scheduler fires an alarm. Run
// wires the registry, lifecycle service and scheduler together and drives the
// read-eval loop until quit or shutdown.
package console
