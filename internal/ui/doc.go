// Package ui renders the Pulse preview as a Bubble Tea program.
//
// The model owns no timers of its own beyond a frame tick. Slide and quote
// state come from a carousel.Controller and carousel.Rotator, which the
// model samples with Snapshot on every frame and on every key that moves
// them. Track motion, counters and card timelines are pure functions of the
// frame clock, so a test can drive the whole view with a fixed Now.
//
// Screens:
//
//   - landing: hero, feature carousel, testimonials, ROI calculator,
//     integrations and FAQ
//   - dashboard: stat counters, revenue trend, top clients, payments
//   - onboarding: platforms, monthly goal, first client
//   - login: a form that submits nowhere
//   - privacy, terms: scrollable documents
//
// Theme and start screen persist through the prefs package.
package ui
