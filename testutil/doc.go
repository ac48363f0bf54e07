/*
Package testutil provides testing utilities for the fair dice game
implementation.

This package contains deterministic test fixtures designed to simplify
writing tests for the commitment, protocol, and game components. It supports
unit testing of the entire stack by replacing the two external effects the
game has (secure randomness and console I/O) with scripted equivalents.

# Key Components

## Entropy Sources

DeterministicEntropy returns an io.Reader producing an unlimited, repeatable
byte stream derived from a seed, so commitment generation and uniform draws
are reproducible across runs:

	commitment, err := crypto.Generate(testutil.DeterministicEntropy(1), 0, 5)

FailingEntropy returns a reader whose reads always fail, for exercising the
fatal entropy-unavailable path.

## Console Fixtures

ScriptedLines builds an io.Reader from canned input lines, as if the user had
typed them. CaptureDisplay records every line written to the display sink so
tests can assert on the audit output.

## Dice Fixtures

ClassicDice returns the standard non-transitive triple used throughout the
tests, where each die beats the next with probability 5/9.
*/
package testutil
