// Package toolchain builds argument vectors for the cross-compiler and the
// object-copy utility and runs them as child processes.
//
// Every command is an argv handed to exec.CommandContext; nothing is ever
// passed through a shell, so filenames with spaces or shell metacharacters
// reach the tool unchanged.
//
// Builders:
//   - CompileArgs:  <cc> -c <file>... -specs=<specs>
//   - LinkArgs:     <cc> -o <exe> <obj>... -specs=<specs>
//   - AssemblyArgs: <cc> -S -o <asm> <obj>...
//   - BinaryArgs:   <objcopy> -O binary <exe> <bin>
//   - HexArgs:      <objcopy> -O ihex <exe> <hex>
package toolchain
