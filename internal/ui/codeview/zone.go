package codeview

// Zone ID constants for mouse click detection in the code view.
// Uses bubblezone; zone.Scan() must be called at the app level so the
// markers resolve to screen coordinates.

// CopyButtonZoneID marks the header copy button.
const CopyButtonZoneID = "codeview-copy"
