/*
Package domain contains the types shared between the input engine, its adapters and callers.

It defines the observability events emitted while a session runs, the hook set that
receives them, and the sentinel errors callers can test for with errors.Is. The package
has no I/O and no dependencies on the rest of the module.

# Key Entities

  - AttemptEvent: one line was read from the input source.
  - RejectEvent: the line failed sanitizing, parsing or a test, and the session will retry.
  - AcceptEvent: the session produced a value (parsed or defaulted).
  - Hooks: optional callbacks for the three events.
*/
package domain
