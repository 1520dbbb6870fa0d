/*
Package provider implements the generative-text backends the engine can
invoke, plus the selection function mapping a provider identifier to one of
them.

Implementations never return errors from Invoke: transport failures, bad
status codes and missing configuration are encoded in the returned string so
the execution trace can display them inline (see ports.TextProvider).

# Providers

  - "ollama": local Ollama HTTP endpoint (default http://localhost:11434).
  - "azureOpenAI": Azure OpenAI chat completion; requires APIKey and Endpoint.
  - anything else (including "dummy" and empty): a simulated client that
    synthesizes a canned response embedding the prompt.
*/
package provider
