/*
Package ports defines the driven ports (interfaces) for the WhyBecause engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various storage backends and generative-text
providers.

# Key Interfaces

  - DocumentStore: persistence of Flow/Agent/Project documents (memory, file, Redis).
  - TextProvider: the generative-text backend invoked when a state runs.
  - TraceSink: receiver of human-readable execution progress lines.
*/
package ports
