/*
Package domain contains the core domain models for the WhyBecause engine.

It defines the fundamental entities of the system: Flows (directed graphs of
States and Transitions), Agents (prompt templates bound to States), Projects
(document containers carrying provider configuration) and the Document
envelope used by the persistence ports. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Flow: a named directed graph of States and Transitions.
  - State: a node in a Flow, optionally bound to an Agent.
  - Transition: a directed, identified edge between two States.
  - Agent: a named prompt template executed by a generative-text backend.
  - Project: a container of document references plus provider configuration.
  - Document: the typed envelope persisted by a DocumentStore.
*/
package domain
