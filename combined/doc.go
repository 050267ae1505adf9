// Package combined builds the "signal combination" walkthrough: navigation
// data, ranging code and carrier shown separately, their product as
// transmitted by the satellite, the attenuated noisy copy seen by a
// receiver, and the correlation scan that acquires it.
//
// All series are sampled on normalized time t = i/n in [0, 1). Carrier
// frequencies are display cycles per window, not physical hertz.
//
// The static views (Components, Transmitted, Received, AcquisitionScan) have
// animated counterparts (ComponentsFrame, TransmissionFrame, ReceptionFrame,
// CorrelationFrame) that are pure functions of animation progress and step,
// apart from the injected noise source.
package combined
