/*
Package whybecause is the high-level entry point for the WhyBecause flow
engine: a library for stepping through directed graphs of analysis states,
optionally invoking LLM-backed agents at each state.

The core lives in the sub-packages:

  - pkg/domain: Flow, State, Transition, Agent, Project and Document models.
  - pkg/runner: the Flow Runner state machine.
  - pkg/session: a registry of live runners for multi-session hosts.
  - pkg/provider: generative-text backends (Ollama, Azure OpenAI, simulated).
  - pkg/adapters: document stores (memory, file, Redis).

This package bundles them into a Workspace for hosts that want a single
handle, and carries the module version.
*/
package whybecause
