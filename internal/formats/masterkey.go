package formats

// masterKey is the fixed global key compiled into the implementation. The
// cipher consumes it as a 256-entry table of 4-byte little-endian words,
// indexed by a single byte during key derivation.
var masterKey = []byte{
	0x2E, 0xA0, 0xBC, 0xC5, 0x4B, 0x06, 0x1D, 0xD0, 0x42, 0xB1, 0xA9, 0xCA, 0x12, 0x4A, 0x36, 0xD2,
	0xF7, 0xC8, 0xA4, 0x36, 0x1F, 0x57, 0x0B, 0xFC, 0x13, 0xB9, 0xFA, 0x1A, 0xD0, 0xAB, 0x44, 0x8F,
	0x2C, 0x74, 0x30, 0x24, 0xAC, 0xFB, 0x3A, 0xF9, 0x1C, 0xB9, 0xBA, 0x39, 0xD2, 0x1A, 0x18, 0x96,
	0xE5, 0x80, 0xFC, 0xB5, 0xD1, 0x77, 0x2B, 0x91, 0x31, 0x8A, 0xFC, 0x71, 0x4C, 0xA6, 0xF2, 0x3C,
	0x6A, 0x46, 0x5E, 0x67, 0x97, 0x56, 0xC9, 0xB4, 0xEC, 0x0C, 0x0C, 0x34, 0x5A, 0x4E, 0xBA, 0x38,
	0xDA, 0xE1, 0xB9, 0x62, 0x73, 0xBC, 0xE3, 0x91, 0x4B, 0x7B, 0x86, 0x48, 0xAC, 0xE9, 0x4D, 0xAC,
	0xE1, 0x11, 0x45, 0x92, 0xEE, 0x8E, 0x6A, 0x34, 0x02, 0x24, 0xF8, 0x99, 0xE8, 0xF0, 0x58, 0xE0,
	0xB2, 0x05, 0x75, 0x14, 0xE7, 0xB6, 0x1C, 0x34, 0x2D, 0x60, 0x1F, 0xB5, 0xAA, 0xE0, 0x9A, 0x5E,
	0x49, 0x06, 0x93, 0xA8, 0xC6, 0x0D, 0x3E, 0xE4, 0xAC, 0x96, 0x67, 0xA5, 0x90, 0x68, 0x03, 0x08,
	0x17, 0x7D, 0x11, 0x70, 0x55, 0x24, 0xBF, 0x48, 0x1F, 0xE9, 0xFA, 0x85, 0x58, 0x6B, 0x80, 0xD2,
	0x31, 0x12, 0xE2, 0x70, 0x9C, 0xF6, 0x52, 0x91, 0xC8, 0x81, 0xB6, 0xF8, 0xF6, 0x42, 0x80, 0x85,
	0x9F, 0x07, 0xC1, 0x92, 0xC6, 0x4B, 0xE7, 0x28, 0x5A, 0x96, 0x1A, 0xD3, 0x2F, 0x72, 0xA3, 0x14,
	0x83, 0xCF, 0x6B, 0xA0, 0x46, 0x7A, 0xAD, 0xE6, 0x7F, 0x22, 0x4B, 0xE8, 0x18, 0x9C, 0x68, 0xB6,
	0x2E, 0xAC, 0x87, 0x70, 0xE9, 0x0B, 0x8A, 0xA1, 0x63, 0x3F, 0x26, 0x2F, 0xBA, 0xE2, 0xB6, 0x45,
	0x45, 0xBB, 0x86, 0xC4, 0xAB, 0xD4, 0x89, 0xCC, 0xF3, 0x78, 0x18, 0x73, 0x32, 0x5D, 0x52, 0x2D,
	0x1A, 0x79, 0x3A, 0xCB, 0x6E, 0x7A, 0xFB, 0xBA, 0xC1, 0x57, 0x6E, 0xE7, 0x4B, 0xC8, 0x1D, 0xE0,
	0x4C, 0x81, 0xCE, 0x59, 0x50, 0x7B, 0xB8, 0x9C, 0x1B, 0x7D, 0xC5, 0x9B, 0xEC, 0x3C, 0x62, 0xB6,
	0x0C, 0x11, 0x16, 0x37, 0x2A, 0x99, 0xCB, 0x2F, 0xC1, 0xB7, 0xD4, 0x85, 0xEF, 0x1E, 0xF3, 0xB0,
	0xDF, 0x9C, 0x25, 0x65, 0x89, 0xFC, 0x5E, 0xAB, 0x9A, 0x8D, 0x57, 0x81, 0xE0, 0xF2, 0xEB, 0xC5,
	0x1F, 0xF8, 0xA1, 0xDA, 0x14, 0x64, 0x3B, 0x56, 0xD4, 0xD7, 0x59, 0x91, 0x40, 0x02, 0xD4, 0xD9,
	0xC8, 0x7D, 0x37, 0x94, 0x20, 0x6D, 0x45, 0xC7, 0x96, 0x02, 0x5D, 0x8E, 0x76, 0x17, 0x49, 0xFE,
	0xE1, 0x6D, 0x2C, 0x33, 0x8B, 0x50, 0x62, 0x17, 0xFD, 0xA5, 0x82, 0x86, 0x91, 0x00, 0xCC, 0x13,
	0xDE, 0xB2, 0xDC, 0xBD, 0x39, 0x74, 0xBE, 0x17, 0x54, 0xCE, 0x2B, 0xFA, 0x04, 0x36, 0x86, 0x8F,
	0xE0, 0xD1, 0x0F, 0x57, 0x04, 0x5B, 0x7E, 0x3F, 0x1D, 0x2D, 0x86, 0x5A, 0x28, 0x43, 0x40, 0xC8,
	0xCC, 0x0A, 0xE1, 0x85, 0xD4, 0x53, 0x76, 0xD0, 0xC6, 0xAD, 0xE5, 0xEB, 0x39, 0xA0, 0x89, 0x45,
	0xC1, 0x12, 0xFF, 0x3B, 0x09, 0x2D, 0x9E, 0x00, 0xCD, 0xA0, 0x12, 0x76, 0x73, 0x45, 0x33, 0xFA,
	0xF4, 0xF4, 0xB6, 0xEE, 0x17, 0xFA, 0x2B, 0x0E, 0x55, 0xB0, 0xF6, 0x51, 0x1D, 0x4A, 0x71, 0x0A,
	0x36, 0x3B, 0x9C, 0xA8, 0x1B, 0x1B, 0xDB, 0xB7, 0xC4, 0x13, 0xC1, 0xCD, 0x0A, 0xB0, 0x60, 0xCC,
	0xC5, 0xE1, 0x9C, 0xAC, 0xF1, 0x8B, 0x4B, 0x21, 0xDE, 0xAE, 0x20, 0x3B, 0xE8, 0xC4, 0xBC, 0xEA,
	0x97, 0xBF, 0x57, 0x8D, 0x1C, 0x23, 0x3C, 0x0D, 0x32, 0xF4, 0x31, 0x09, 0xC5, 0x0D, 0x8F, 0x77,
	0x28, 0xC3, 0xA3, 0xA9, 0xB8, 0xD6, 0x47, 0x7A, 0xCB, 0xC4, 0xA2, 0x5C, 0x62, 0x14, 0x77, 0x98,
	0x26, 0x58, 0x6F, 0x19, 0x0D, 0x2E, 0xDB, 0xDB, 0xDB, 0x07, 0x70, 0x59, 0x65, 0xF4, 0x76, 0x44,
	0xC8, 0x49, 0xD2, 0x61, 0x48, 0x1A, 0x8E, 0x43, 0x37, 0x49, 0x14, 0x3D, 0x12, 0x67, 0x53, 0xA4,
	0x88, 0x58, 0x7D, 0xCC, 0x06, 0x5E, 0xC0, 0x6E, 0xD9, 0xC5, 0xDD, 0xEE, 0x89, 0x29, 0x03, 0xA2,
	0x50, 0xD7, 0x2D, 0x5A, 0xB0, 0xD7, 0xE4, 0x47, 0x42, 0x66, 0x49, 0xB5, 0x2B, 0x57, 0x95, 0xE3,
	0x18, 0xBD, 0xDA, 0xF8, 0x59, 0x1E, 0x52, 0x20, 0xB9, 0x64, 0x25, 0x69, 0x91, 0x88, 0x00, 0x36,
	0x5B, 0x3F, 0xEC, 0x83, 0xEB, 0xFF, 0xDA, 0x15, 0x0D, 0x5A, 0x09, 0xA5, 0xDF, 0xAE, 0xE6, 0x49,
	0x21, 0x3C, 0xCC, 0xE3, 0x0B, 0xB2, 0x73, 0x8E, 0x95, 0x5E, 0x56, 0x74, 0x56, 0xAB, 0x26, 0x52,
	0x76, 0xCC, 0x03, 0x82, 0xC3, 0x16, 0x3D, 0x97, 0xC3, 0xA4, 0xBA, 0x97, 0xDA, 0x2C, 0x3F, 0x09,
	0x67, 0x0F, 0xF0, 0x35, 0x9B, 0x60, 0xAC, 0xEB, 0xA1, 0x84, 0x52, 0xF1, 0x30, 0xB5, 0xB9, 0x7D,
	0xA0, 0x23, 0xF6, 0x6D, 0x90, 0x65, 0xBA, 0xFC, 0x93, 0xFE, 0x4D, 0x75, 0xC9, 0x34, 0x8D, 0x59,
	0xA3, 0xB4, 0xAF, 0x9F, 0xE3, 0x3D, 0x08, 0xED, 0x9C, 0x04, 0x4D, 0xF9, 0x67, 0x23, 0x27, 0xB2,
	0xDB, 0xFA, 0x49, 0x5E, 0xFD, 0xA9, 0x43, 0x95, 0x98, 0xD4, 0x54, 0x32, 0xBC, 0x29, 0x1A, 0x0C,
	0xD9, 0x79, 0xC0, 0xF5, 0x25, 0x6D, 0xF5, 0x24, 0x6B, 0x45, 0x5D, 0x77, 0xF7, 0xBB, 0xD3, 0xB2,
	0x97, 0x59, 0x55, 0xE3, 0x0B, 0x73, 0x2E, 0xB5, 0xD4, 0x20, 0xE6, 0x8A, 0x84, 0x95, 0x81, 0x92,
	0x2D, 0xF6, 0x5D, 0xD7, 0x17, 0x05, 0x3C, 0x8F, 0x0F, 0x33, 0xAF, 0x21, 0x93, 0x2C, 0x28, 0x77,
	0x7A, 0xB1, 0xF7, 0xA7, 0x14, 0xB4, 0xDF, 0x47, 0x7D, 0x82, 0xDC, 0x5F, 0xA8, 0xDC, 0x8D, 0x41,
	0xAF, 0x42, 0x82, 0x43, 0xF1, 0xB3, 0xD7, 0xF3, 0x06, 0xA5, 0x49, 0xD6, 0xEA, 0x58, 0xEF, 0xA5,
	0x2D, 0xC5, 0xBD, 0x92, 0x9C, 0x44, 0x19, 0xCD, 0xAD, 0x7A, 0xE4, 0xAA, 0x74, 0xD7, 0x6D, 0x27,
	0x37, 0x23, 0x2F, 0x7A, 0xA9, 0x54, 0x54, 0xC3, 0xE1, 0xC0, 0xB4, 0x07, 0xFF, 0x30, 0xB3, 0xCB,
	0xB8, 0x23, 0xCA, 0xC8, 0x40, 0xD0, 0x50, 0x02, 0x58, 0xC3, 0xEE, 0x64, 0x50, 0x8B, 0x7D, 0x0E,
	0xBD, 0x33, 0xC8, 0x58, 0xD5, 0x68, 0xF1, 0x7F, 0x2D, 0x89, 0x3A, 0x7C, 0xB1, 0xCF, 0x3E, 0xDC,
	0xCC, 0x1E, 0x58, 0x9D, 0x8F, 0xA1, 0xC6, 0x6B, 0x18, 0x1D, 0xBA, 0x4B, 0x49, 0x64, 0xC7, 0x48,
	0xA8, 0xDC, 0x18, 0xB0, 0x2A, 0xCE, 0x5E, 0xF8, 0xA0, 0xA8, 0xA1, 0xBF, 0x1A, 0x70, 0xF2, 0xDF,
	0x07, 0xE9, 0x0B, 0x3A, 0xAE, 0xFA, 0x26, 0x78, 0xB7, 0xDE, 0x98, 0x64, 0x28, 0x11, 0x61, 0x68,
	0x13, 0x5F, 0x93, 0xD8, 0x7A, 0xEA, 0xA0, 0x0F, 0xBE, 0x8F, 0xFB, 0xD2, 0x30, 0x2C, 0xC9, 0x34,
	0x69, 0x53, 0xB1, 0xBD, 0x3D, 0x7E, 0xB1, 0x34, 0xD2, 0xA8, 0xFD, 0xBA, 0x34, 0xBF, 0xC4, 0x3B,
	0xA5, 0x83, 0xB0, 0xC0, 0xFA, 0x6A, 0x6C, 0x35, 0x9E, 0xCB, 0x18, 0x80, 0x0E, 0x36, 0x45, 0x6A,
	0x83, 0x50, 0xE4, 0xBE, 0x8B, 0x82, 0x21, 0x99, 0x0C, 0x07, 0xCF, 0x0B, 0x68, 0x3E, 0x8D, 0xDA,
	0x91, 0xF0, 0xB4, 0x34, 0xE1, 0x03, 0x5A, 0x5E, 0xC7, 0xBF, 0x1F, 0x79, 0xD5, 0xE5, 0x88, 0xC5,
	0xC3, 0x60, 0xE1, 0x62, 0xF6, 0x2D, 0xFB, 0x85, 0x01, 0xA6, 0x12, 0x60, 0xDF, 0x03, 0xF3, 0x8E,
	0x88, 0x6A, 0x9A, 0x3B, 0x5A, 0x60, 0x56, 0x37, 0xE9, 0x42, 0x38, 0x7D, 0xDB, 0x9B, 0x58, 0xE7,
	0x1D, 0xD1, 0xAB, 0xB3, 0x3E, 0x19, 0x64, 0x36, 0xD3, 0xD0, 0x51, 0x7F, 0xAC, 0x7B, 0xC4, 0x74,
	0x05, 0x73, 0x30, 0xE8, 0x4D, 0x3B, 0xEB, 0x43, 0xFF, 0x8F, 0x8F, 0x4A, 0x9A, 0x94, 0xBE, 0xEF,
}
