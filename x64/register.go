package x64

// Register is an abstract handle onto a CPU register. The encoder never
// looks at which register family a value belongs to (GPR, XMM, mask, ...);
// it only reads LCode/HCode and compares identity against RSP/RBP/R12/R13.
type Register struct {
	// Name is the register's assembly mnemonic, e.g. "rax", "xmm9", "k3".
	Name string
	// Encoding is the register's full 4-bit index (0-15 for GPRs/XMM/YMM,
	// 0-7 for mask registers). LCode and HCode are derived from it.
	Encoding byte
}

// LCode returns the low 3 bits of the register's encoding: the bits placed
// directly into ModR/M.rm, ModR/M.reg, or SIB.base/index.
func (r Register) LCode() byte {
	return r.Encoding & 0b111
}

// HCode returns the 4th bit of the register's encoding: the bit carried in
// REX.B/X/R or the inverted VEX/XOP B/X/R field.
func (r Register) HCode() byte {
	return (r.Encoding >> 3) & 0b1
}

func (Register) isOperand() {}

// General-purpose registers (64-bit).
var (
	RAX = Register{Name: "rax", Encoding: 0}
	RCX = Register{Name: "rcx", Encoding: 1}
	RDX = Register{Name: "rdx", Encoding: 2}
	RBX = Register{Name: "rbx", Encoding: 3}
	RSP = Register{Name: "rsp", Encoding: 4}
	RBP = Register{Name: "rbp", Encoding: 5}
	RSI = Register{Name: "rsi", Encoding: 6}
	RDI = Register{Name: "rdi", Encoding: 7}
	R8  = Register{Name: "r8", Encoding: 8}
	R9  = Register{Name: "r9", Encoding: 9}
	R10 = Register{Name: "r10", Encoding: 10}
	R11 = Register{Name: "r11", Encoding: 11}
	R12 = Register{Name: "r12", Encoding: 12}
	R13 = Register{Name: "r13", Encoding: 13}
	R14 = Register{Name: "r14", Encoding: 14}
	R15 = Register{Name: "r15", Encoding: 15}
)

// General-purpose registers (32-bit).
var (
	EAX  = Register{Name: "eax", Encoding: 0}
	ECX  = Register{Name: "ecx", Encoding: 1}
	EDX  = Register{Name: "edx", Encoding: 2}
	EBX  = Register{Name: "ebx", Encoding: 3}
	ESP  = Register{Name: "esp", Encoding: 4}
	EBP  = Register{Name: "ebp", Encoding: 5}
	ESI  = Register{Name: "esi", Encoding: 6}
	EDI  = Register{Name: "edi", Encoding: 7}
	R8D  = Register{Name: "r8d", Encoding: 8}
	R9D  = Register{Name: "r9d", Encoding: 9}
	R10D = Register{Name: "r10d", Encoding: 10}
	R11D = Register{Name: "r11d", Encoding: 11}
	R12D = Register{Name: "r12d", Encoding: 12}
	R13D = Register{Name: "r13d", Encoding: 13}
	R14D = Register{Name: "r14d", Encoding: 14}
	R15D = Register{Name: "r15d", Encoding: 15}
)

// XMM registers (128-bit SSE/AVX).
var (
	XMM0  = Register{Name: "xmm0", Encoding: 0}
	XMM1  = Register{Name: "xmm1", Encoding: 1}
	XMM2  = Register{Name: "xmm2", Encoding: 2}
	XMM3  = Register{Name: "xmm3", Encoding: 3}
	XMM4  = Register{Name: "xmm4", Encoding: 4}
	XMM5  = Register{Name: "xmm5", Encoding: 5}
	XMM6  = Register{Name: "xmm6", Encoding: 6}
	XMM7  = Register{Name: "xmm7", Encoding: 7}
	XMM8  = Register{Name: "xmm8", Encoding: 8}
	XMM9  = Register{Name: "xmm9", Encoding: 9}
	XMM10 = Register{Name: "xmm10", Encoding: 10}
	XMM11 = Register{Name: "xmm11", Encoding: 11}
	XMM12 = Register{Name: "xmm12", Encoding: 12}
	XMM13 = Register{Name: "xmm13", Encoding: 13}
	XMM14 = Register{Name: "xmm14", Encoding: 14}
	XMM15 = Register{Name: "xmm15", Encoding: 15}
)

// YMM registers (256-bit AVX).
var (
	YMM0  = Register{Name: "ymm0", Encoding: 0}
	YMM1  = Register{Name: "ymm1", Encoding: 1}
	YMM2  = Register{Name: "ymm2", Encoding: 2}
	YMM3  = Register{Name: "ymm3", Encoding: 3}
	YMM4  = Register{Name: "ymm4", Encoding: 4}
	YMM5  = Register{Name: "ymm5", Encoding: 5}
	YMM6  = Register{Name: "ymm6", Encoding: 6}
	YMM7  = Register{Name: "ymm7", Encoding: 7}
	YMM8  = Register{Name: "ymm8", Encoding: 8}
	YMM9  = Register{Name: "ymm9", Encoding: 9}
	YMM10 = Register{Name: "ymm10", Encoding: 10}
	YMM11 = Register{Name: "ymm11", Encoding: 11}
	YMM12 = Register{Name: "ymm12", Encoding: 12}
	YMM13 = Register{Name: "ymm13", Encoding: 13}
	YMM14 = Register{Name: "ymm14", Encoding: 14}
	YMM15 = Register{Name: "ymm15", Encoding: 15}
)

// Mask registers (AVX-512). K0 is "no mask" in most forms but is still a
// regular operand as far as the encoder is concerned.
var (
	K0 = Register{Name: "k0", Encoding: 0}
	K1 = Register{Name: "k1", Encoding: 1}
	K2 = Register{Name: "k2", Encoding: 2}
	K3 = Register{Name: "k3", Encoding: 3}
	K4 = Register{Name: "k4", Encoding: 4}
	K5 = Register{Name: "k5", Encoding: 5}
	K6 = Register{Name: "k6", Encoding: 6}
	K7 = Register{Name: "k7", Encoding: 7}
)

// RegistersByName indexes every register this package declares by its
// lower-case assembly name.
var RegistersByName = map[string]Register{
	"rax": RAX, "rcx": RCX, "rdx": RDX, "rbx": RBX,
	"rsp": RSP, "rbp": RBP, "rsi": RSI, "rdi": RDI,
	"r8": R8, "r9": R9, "r10": R10, "r11": R11,
	"r12": R12, "r13": R13, "r14": R14, "r15": R15,

	"eax": EAX, "ecx": ECX, "edx": EDX, "ebx": EBX,
	"esp": ESP, "ebp": EBP, "esi": ESI, "edi": EDI,
	"r8d": R8D, "r9d": R9D, "r10d": R10D, "r11d": R11D,
	"r12d": R12D, "r13d": R13D, "r14d": R14D, "r15d": R15D,

	"xmm0": XMM0, "xmm1": XMM1, "xmm2": XMM2, "xmm3": XMM3,
	"xmm4": XMM4, "xmm5": XMM5, "xmm6": XMM6, "xmm7": XMM7,
	"xmm8": XMM8, "xmm9": XMM9, "xmm10": XMM10, "xmm11": XMM11,
	"xmm12": XMM12, "xmm13": XMM13, "xmm14": XMM14, "xmm15": XMM15,

	"ymm0": YMM0, "ymm1": YMM1, "ymm2": YMM2, "ymm3": YMM3,
	"ymm4": YMM4, "ymm5": YMM5, "ymm6": YMM6, "ymm7": YMM7,
	"ymm8": YMM8, "ymm9": YMM9, "ymm10": YMM10, "ymm11": YMM11,
	"ymm12": YMM12, "ymm13": YMM13, "ymm14": YMM14, "ymm15": YMM15,

	"k0": K0, "k1": K1, "k2": K2, "k3": K3,
	"k4": K4, "k5": K5, "k6": K6, "k7": K7,
}
