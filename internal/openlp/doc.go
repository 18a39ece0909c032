// Package openlp provides an HTTP client for the OpenLP remote API.
//
// # Overview
//
// OpenLP exposes its live state over a small read-only HTTP API. This package
// polls that API, downloads the currently live item, and classifies it so
// callers only ever see items that are ready for the overlay.
//
// # API Endpoints
//
//   - GET /api/poll: live item id, slide index and blanking flags
//   - GET /api/controller/live/text: slides of the live item
//   - GET /api/service/list: service items with plugin and title
//
// Every response is a JSON object with a top-level "results" member. A
// response without it is treated exactly like a transport failure.
//
// # Connection Health
//
// Each Client carries a three-state health machine:
//
//	ok ──fail──> retrying ──fail──> paused (RetryAt = now + retry interval)
//	 ^                                 │
//	 └──────── success, or RetryAt ────┘
//
// While paused, Poll returns ErrPaused without touching the network. After
// RetryAt the state clears to ok and one request is attempted; two more
// failures pause again.
//
// # Error Handling
//
//   - ErrConnection: timeout, transport error, non-2xx status, malformed or
//     missing envelope. Drives the health machine.
//   - ErrRace: the live item changed between /api/poll and the detail request.
//   - ErrLookup: the service list holds zero or several entries for the id.
//
// ErrRace and ErrLookup never change health; the caller simply retries on the
// next poll.
//
// # Footer Classification
//
// Classify derives an item's footer from its plugin:
//
//   - bibles, custom: the Bible reference at the start of the title, if any
//   - songs: the title
//   - anything else: slides are dropped so the item never reaches the overlay
package openlp
